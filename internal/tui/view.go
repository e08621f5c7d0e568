package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ADVALAIN596/ToolPathViz/internal/parser"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
	"github.com/ADVALAIN596/ToolPathViz/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.done() {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render("ToolPathViz • Open "+filepath.Base(m.path)))
	sections = append(sections, sectionStyle.Render("Format"))

	if len(m.filters) == 0 {
		sections = append(sections, failureStyle.Render("No formats registered"))
	} else {
		sections = append(sections, m.renderFilters())
	}

	sections = append(sections, helpLineStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFilters() string {
	lines := make([]string, len(m.filters))
	for i, filter := range m.filters {
		label, ext, ok := parser.SplitFilter(filter)
		if !ok {
			label, ext = filter, ""
		}

		marker := "  "
		text := itemStyle.Render(label)
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
			text = cursorStyle.Render(label)
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, text)
		if ext != "" {
			line += " " + extStyle.Render(ext)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders the result of a successful load.
func RenderSummary(path, filter string, tp *toolpath.Toolpath) string {
	summary := components.NewSummary(components.SummaryData{
		File:     path,
		Filter:   filter,
		Toolpath: tp,
	}).View()
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("ToolPathViz • "+filepath.Base(path)),
		summaryStyle.Render(summary),
	)
}
