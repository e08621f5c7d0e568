package toolpath

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes the canonical dump of the path: one move per line, fixed
// precision, no source line numbers. Two paths with equal motion produce
// byte-identical dumps regardless of the format they were decoded from.
func (t *Toolpath) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	units := UnitsMillimeters
	if t != nil && t.Units != "" {
		units = t.Units
	}
	fmt.Fprintf(bw, "units %s\n", units)
	if t != nil {
		for _, m := range t.Moves {
			bw.WriteString(m.text())
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Text returns the canonical dump as a string.
func (t *Toolpath) Text() string {
	var sb strings.Builder
	_ = t.WriteText(&sb)
	return sb.String()
}

func (m Move) text() string {
	var sb strings.Builder
	sb.WriteString(string(m.Kind))
	sb.WriteByte(' ')
	sb.WriteString(m.To.String())
	if m.Center != nil {
		fmt.Fprintf(&sb, " C[%s]", m.Center.String())
	}
	if m.Feed > 0 {
		fmt.Fprintf(&sb, " F%s", formatCoord(m.Feed))
	}
	return sb.String()
}

func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	// -0 and 0 must dump identically.
	if s == "-0" {
		s = "0"
	}
	return s
}
