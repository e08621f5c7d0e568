package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filters)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Choose):
		if len(m.filters) == 0 {
			return m, nil
		}
		m.selected = m.filters[m.cursor]
		return m, tea.Quit
	default:
		// 1-9 jump straight to an entry.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if index := int(s[0] - '1'); index < len(m.filters) {
				m.cursor = index
			}
		}
	}
	return m, nil
}
