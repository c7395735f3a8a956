package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.mode != inputNone {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleInputKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		name := m.theme.Name
		m.savePrefs(func(p *prefs.Prefs) { p.Theme = name })
		return m, nil

	case key.Matches(msg, m.keys.Cluster):
		return m, m.startInput(inputCluster, "", "cluster id or renderer URL", m.store.CurrentCluster())

	case key.Matches(msg, m.keys.NewGroup):
		if m.store.CurrentCluster() == "" {
			m.setStatus("no active cluster, press c to pick one", true)
			return m, nil
		}
		return m, m.startInput(inputNewGroup, "", "group name", "")

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.rows))
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.rows))
		return m, nil
	}

	row, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	if row.Kind == favorites.RowGroup {
		return m.handleGroupKey(msg, row.Group)
	}
	return m.handleItemKey(msg, row.Item)
}

// handleItemKey processes keys while a favorite is selected.
func (m Model) handleItemKey(msg tea.KeyMsg, item favorites.FavoriteItem) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open):
		selected := item
		m.selected = &selected
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if item.GroupID == "" {
			return m, nil
		}
		saved := m.store.ToggleGroupExpanded(item.GroupID)
		m.refresh()
		m.selectRow(item.GroupID)
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.MoveUp), key.Matches(msg, m.keys.MoveDown):
		delta := 1
		if key.Matches(msg, m.keys.MoveUp) {
			delta = -1
		}
		order, ok := moveItem(m.store.CurrentClusterItems(), m.store.CurrentClusterGroups(), item.ID, delta)
		if !ok {
			return m, nil
		}
		saved := m.store.ReorderFavorites(order)
		m.refresh()
		m.selectRow(item.ID)
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.Remove):
		saved := m.store.RemoveFavorite(item.ID)
		m.refresh()
		m.setStatus(fmt.Sprintf("removed %q", item.Title), false)
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.Rename):
		return m, m.startInput(inputRename, item.ID, "title", item.Title)

	case key.Matches(msg, m.keys.Assign):
		groupID := nextGroupID(m.store.CurrentClusterGroups(), item.GroupID)
		if groupID == "" {
			m.setStatus("no groups yet, press n to create one", true)
			return m, nil
		}
		saved := m.store.AddItemToGroup(item.ID, groupID)
		m.refresh()
		m.selectRow(item.ID)
		if g, ok := m.store.Group(groupID); ok {
			m.setStatus(fmt.Sprintf("moved %q to %s", item.Title, g.Name), false)
		}
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.Ungroup):
		if item.GroupID == "" {
			return m, nil
		}
		saved := m.store.RemoveItemFromGroup(item.ID)
		m.refresh()
		m.selectRow(item.ID)
		return m, watchSave(saved)
	}

	return m, nil
}

// handleGroupKey processes keys while a group header is selected.
func (m Model) handleGroupKey(msg tea.KeyMsg, group favorites.FavoriteGroup) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Toggle):
		saved := m.store.ToggleGroupExpanded(group.ID)
		m.refresh()
		m.selectRow(group.ID)
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.DeleteGroup):
		saved := m.store.RemoveGroup(group.ID, false)
		m.refresh()
		m.setStatus(fmt.Sprintf("deleted group %s", group.Name), false)
		return m, watchSave(saved)

	case key.Matches(msg, m.keys.DeleteGroupItems):
		saved := m.store.RemoveGroup(group.ID, true)
		m.refresh()
		m.setStatus(fmt.Sprintf("deleted group %s and its favorites", group.Name), false)
		return m, watchSave(saved)
	}

	return m, nil
}

// moveCursor moves the selection by delta rows, clamped to the list.
func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.syncList()
}
