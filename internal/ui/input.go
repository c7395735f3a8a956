package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clusterfav/internal/clusterid"
	"github.com/five82/clusterfav/internal/favorites"
)

// startInput opens the prompt for mode, pre-filled with value.
func (m *Model) startInput(mode inputMode, target, placeholder, value string) tea.Cmd {
	m.mode = mode
	m.target = target
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// stopInput closes the prompt.
func (m *Model) stopInput() {
	m.mode = inputNone
	m.target = ""
	m.input.Blur()
	m.input.Reset()
}

// handleInputKey routes keys to the prompt while it is open.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopInput()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput applies the prompt value.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	mode, target := m.mode, m.target
	m.stopInput()
	if value == "" {
		return m, nil
	}

	switch mode {
	case inputNewGroup:
		g, saved := m.store.AddGroup(value)
		m.refresh()
		m.selectRow(g.ID)
		m.setStatus(fmt.Sprintf("created group %q", g.Name), false)
		return m, watchSave(saved)

	case inputRename:
		saved := m.store.UpdateFavorite(target, favorites.FavoriteUpdate{Title: &value})
		m.refresh()
		m.setStatus(fmt.Sprintf("renamed to %q", value), false)
		return m, watchSave(saved)

	case inputCluster:
		id := clusterid.Normalize(value)
		m.store.SetCurrentCluster(id)
		m.cursor = 0
		m.refresh()
		m.setStatus("cluster "+id, false)
		return m, nil
	}

	return m, nil
}

// promptLabel names the value the prompt is asking for.
func (m Model) promptLabel() string {
	switch m.mode {
	case inputNewGroup:
		return "New group"
	case inputRename:
		return "Title"
	case inputCluster:
		return "Cluster"
	}
	return ""
}
