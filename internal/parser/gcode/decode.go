package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
	tperrors "github.com/ADVALAIN596/ToolPathViz/pkg/errors"
)

const (
	mmPerInch     = 25.4
	maxLineLength = 1 << 20
)

type motionMode int

const (
	motionNone motionMode = iota
	motionRapid
	motionLinear
	motionArcCW
	motionArcCCW
)

func (m motionMode) kind() toolpath.MoveKind {
	switch m {
	case motionRapid:
		return toolpath.MoveRapid
	case motionArcCW:
		return toolpath.MoveArcCW
	case motionArcCCW:
		return toolpath.MoveArcCCW
	default:
		return toolpath.MoveLinear
	}
}

// word is one "<letter><number>" token.
type word struct {
	letter byte
	value  float64
}

// block holds the words of one line, grouped by role.
type block struct {
	gcodes []int
	mcodes []int
	axes   map[byte]float64
	feed   *float64
}

func (b *block) has(letters ...byte) bool {
	for _, l := range letters {
		if _, ok := b.axes[l]; ok {
			return true
		}
	}
	return false
}

// machine is the modal interpreter state.
type machine struct {
	name     string
	pos      toolpath.Point
	motion   motionMode
	relative bool
	scale    float64
	feed     float64
	ended    bool
	path     *toolpath.Toolpath
}

// Decode reads a G-code program from r. name is used in error messages.
//
// Accepted subset: G0 G1 G2 G3 motion (modal), G4 dwell, G17 plane, G20/G21
// units, G90/G91 distance mode, G94 feed mode, F feed, M2/M30 program end.
// N, S, T and other M words are accepted and ignored. Comments use ';' to end
// of line or '( ... )'. A '%' line delimits the program. Anything else, and
// a program with no motion, is an error.
func Decode(r io.Reader, name string) (*toolpath.Toolpath, error) {
	m := &machine{
		name:  name,
		scale: 1,
		path:  toolpath.New(),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := m.execLine(lineNo, scanner.Text()); err != nil {
			return nil, err
		}
		if m.ended {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, tperrors.NewParseErrorf(name, lineNo+1, "line exceeds %d bytes", maxLineLength)
		}
		return nil, tperrors.NewParseError(name, lineNo, err)
	}

	if m.path.Len() == 0 {
		return nil, tperrors.NewParseErrorf(name, 0, "no motion commands found")
	}
	return m.path, nil
}

func (m *machine) execLine(lineNo int, line string) error {
	code, err := stripComments(line)
	if err != nil {
		return tperrors.NewParseError(m.name, lineNo, err)
	}
	code = strings.TrimSpace(code)
	if code == "" || code == "%" {
		return nil
	}

	words, err := tokenize(code)
	if err != nil {
		return tperrors.NewParseError(m.name, lineNo, err)
	}

	b, err := group(words)
	if err != nil {
		return tperrors.NewParseError(m.name, lineNo, err)
	}

	if err := m.exec(b, lineNo); err != nil {
		return tperrors.NewParseError(m.name, lineNo, err)
	}
	return nil
}

func (m *machine) exec(b *block, lineNo int) error {
	dwell := false
	for _, g := range b.gcodes {
		switch g {
		case 0:
			m.motion = motionRapid
		case 1:
			m.motion = motionLinear
		case 2:
			m.motion = motionArcCW
		case 3:
			m.motion = motionArcCCW
		case 4:
			dwell = true
		case 17, 94:
		case 20:
			m.scale = mmPerInch
		case 21:
			m.scale = 1
		case 90:
			m.relative = false
		case 91:
			m.relative = true
		default:
			return fmt.Errorf("unsupported command G%d", g)
		}
	}

	if b.feed != nil {
		if *b.feed < 0 {
			return fmt.Errorf("feed rate must not be negative, got %s", formatValue(*b.feed))
		}
		m.feed = *b.feed * m.scale
	}

	if !dwell && b.has('X', 'Y', 'Z', 'I', 'J', 'K') {
		if err := m.move(b, lineNo); err != nil {
			return err
		}
	}

	for _, code := range b.mcodes {
		if code == 2 || code == 30 {
			m.ended = true
		}
	}
	return nil
}

func (m *machine) move(b *block, lineNo int) error {
	if m.motion == motionNone {
		return fmt.Errorf("axis words without an active motion command")
	}

	target := m.pos
	apply := func(letter byte, cur float64) float64 {
		v, ok := b.axes[letter]
		if !ok {
			return cur
		}
		if m.relative {
			return cur + v*m.scale
		}
		return v * m.scale
	}
	target.X = apply('X', m.pos.X)
	target.Y = apply('Y', m.pos.Y)
	target.Z = apply('Z', m.pos.Z)

	mv := toolpath.Move{Kind: m.motion.kind(), To: target, Line: lineNo}
	if m.motion != motionRapid {
		mv.Feed = m.feed
	}

	if m.motion == motionArcCW || m.motion == motionArcCCW {
		if !b.has('I', 'J', 'K') {
			return fmt.Errorf("arc without centre offset (I, J or K)")
		}
		offset := toolpath.Point{X: b.axes['I'] * m.scale, Y: b.axes['J'] * m.scale, Z: b.axes['K'] * m.scale}
		center := m.pos.Add(offset)
		mv.Center = &center
	} else if b.has('I', 'J', 'K') {
		return fmt.Errorf("centre offset given for a non-arc move")
	}

	m.path.Append(mv)
	m.pos = target
	return nil
}

// stripComments removes ';' and '( ... )' comments from line.
func stripComments(line string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case ';':
			return sb.String(), nil
		case '(':
			end := strings.IndexByte(line[i+1:], ')')
			if end < 0 {
				return "", fmt.Errorf("unterminated comment")
			}
			i += end + 1
			sb.WriteByte(' ')
		case ')':
			return "", fmt.Errorf("unexpected ')' outside a comment")
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}

func tokenize(code string) ([]word, error) {
	var words []word
	for i := 0; i < len(code); {
		c := code[i]
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		letter := upper(c)
		if letter < 'A' || letter > 'Z' {
			return nil, fmt.Errorf("unexpected character %q", c)
		}
		i++

		start := i
		for i < len(code) {
			d := code[i]
			if d == ' ' || d == '\t' {
				// "X 10" is legal in RS-274; skip blanks between letter and value.
				if i == start {
					i++
					start = i
					continue
				}
				break
			}
			if !isNumberByte(d) {
				break
			}
			i++
		}

		text := code[start:i]
		if text == "" {
			return nil, fmt.Errorf("word '%c' has no value", letter)
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, fmt.Errorf("invalid number %q for word '%c'", text, letter)
		}
		words = append(words, word{letter: letter, value: value})
	}
	return words, nil
}

func group(words []word) (*block, error) {
	b := &block{axes: make(map[byte]float64)}
	for _, w := range words {
		switch w.letter {
		case 'G':
			code, err := integerCode(w)
			if err != nil {
				return nil, err
			}
			b.gcodes = append(b.gcodes, code)
		case 'M':
			code, err := integerCode(w)
			if err != nil {
				return nil, err
			}
			b.mcodes = append(b.mcodes, code)
		case 'X', 'Y', 'Z', 'I', 'J', 'K':
			if _, dup := b.axes[w.letter]; dup {
				return nil, fmt.Errorf("word '%c' repeated", w.letter)
			}
			b.axes[w.letter] = w.value
		case 'F':
			v := w.value
			b.feed = &v
		case 'N', 'S', 'T', 'P':
		default:
			return nil, fmt.Errorf("unsupported word '%c'", w.letter)
		}
	}
	return b, nil
}

// maxCommandCode is the largest G or M number accepted.
const maxCommandCode = 999

func integerCode(w word) (int, error) {
	if w.value < 0 || w.value > maxCommandCode || w.value != math.Trunc(w.value) {
		return 0, fmt.Errorf("unsupported command %c%s", w.letter, formatValue(w.value))
	}
	return int(w.value), nil
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
