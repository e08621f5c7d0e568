package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubbletea state of the format picker. It lists filters in
// the order given and reports the one the user chose.
type Model struct {
	path    string
	filters []string
	cursor  int

	selected  string
	cancelled bool

	keys  keyMap
	help  help.Model
	width int
}

// NewModel builds a picker for path over filters. The cursor starts on
// preselect when it is one of the filters, otherwise on the first entry.
func NewModel(path string, filters []string, preselect string) Model {
	m := Model{
		path:    path,
		filters: append([]string(nil), filters...),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for i, f := range m.filters {
		if f == preselect {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the chosen filter and whether one was chosen.
func (m Model) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// Cancelled reports whether the user left without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Cursor returns the index of the highlighted filter.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) done() bool {
	return m.cancelled || m.selected != ""
}
