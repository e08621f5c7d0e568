package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

var kindOrder = []toolpath.MoveKind{
	toolpath.MoveRapid,
	toolpath.MoveLinear,
	toolpath.MoveArcCW,
	toolpath.MoveArcCCW,
}

// SummaryData aggregates what a load produced for rendering.
type SummaryData struct {
	File     string
	Filter   string
	Toolpath *toolpath.Toolpath
}

// Summary renders a textual toolpath summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// Lines returns the summary as label/value rows.
func (s Summary) Lines() [][2]string {
	tp := s.data.Toolpath
	rows := [][2]string{
		{"File", s.data.File},
		{"Format", s.data.Filter},
		{"Moves", strconv.Itoa(tp.Len())},
	}
	if tp.Len() == 0 {
		return rows
	}

	counts := tp.CountByKind()
	var kinds []string
	for _, kind := range kindOrder {
		if n := counts[kind]; n > 0 {
			kinds = append(kinds, fmt.Sprintf("%s %d", kind, n))
		}
	}
	rows = append(rows, [2]string{"Kinds", strings.Join(kinds, ", ")})

	b := tp.Bounds()
	rows = append(rows,
		[2]string{"Min", b.Min.String()},
		[2]string{"Max", b.Max.String()},
		[2]string{"Size", b.Size().String()},
		[2]string{"Length", fmt.Sprintf("%.3f %s", tp.Length(), tp.Units)},
	)
	return rows
}

// View renders the summary.
func (s Summary) View() string {
	rows := s.Lines()
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0])+1)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = fmt.Sprintf("%-*s  %s", width, row[0]+":", row[1])
	}
	return strings.Join(lines, "\n")
}
