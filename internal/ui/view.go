package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/clusterfav/internal/favorites"
)

// chromeHeight is the number of lines taken by the header and footer.
const chromeHeight = 2

// renderMain renders the header, favorites list and footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	body := m.list.View()
	if len(m.rows) == 0 {
		body = lipgloss.Place(m.width, m.list.Height, lipgloss.Center, lipgloss.Center, m.emptyText())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
	return styles.Background.Width(m.width).Height(m.height).Render(view)
}

// renderHeader shows the active cluster and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	surface := lipgloss.Color(m.theme.Surface)

	cluster := m.store.CurrentCluster()
	clusterText := styles.WarningText.Background(surface).Render("no cluster")
	if cluster != "" {
		clusterText = styles.Text.Background(surface).Render(truncate(cluster, 40))
	}

	parts := []string{
		styles.Logo.Background(surface).Render("★ favorites"),
		clusterText,
		styles.MutedText.Background(surface).Render(fmt.Sprintf("%d items  %d groups", m.menu.Len(), len(m.menu.Sections))),
	}
	sep := lipgloss.NewStyle().Background(surface).Render("  ")
	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderFooter shows the prompt, the last status message or key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	switch {
	case m.mode != inputNone:
		return styles.Footer.Width(m.width).Render(m.promptLabel() + ": " + m.input.View())
	case m.status != "":
		style := styles.SuccessText
		if m.failed {
			style = styles.DangerText
		}
		return styles.Footer.Width(m.width).Render(style.Render(m.status))
	}
	return styles.Footer.Width(m.width).Render("enter open  space toggle  K/J move  n group  d remove  ? help  q quit")
}

func (m Model) emptyText() string {
	styles := m.theme.Styles()
	if m.store.CurrentCluster() == "" {
		return styles.MutedText.Render("No active cluster. Press c to choose one.")
	}
	return styles.MutedText.Render("No favorites in this cluster yet.")
}

// renderRow renders one menu row.
func (m Model) renderRow(row favorites.MenuRow, selected bool) string {
	styles := m.theme.Styles()
	width := max(m.width, 20)

	var line string
	switch row.Kind {
	case favorites.RowGroup:
		arrow := ternary(row.Group.Expanded, "▾", "▸")
		line = fmt.Sprintf("%s %s (%d)", arrow, row.Group.Name, row.Count)
		if !selected {
			return styles.GroupRow.Width(width).Render(padRight(line, width))
		}
	default:
		indent := ternary(row.Grouped, "    ", "  ")
		title := truncate(row.Item.Title, width/2)
		path := truncatePath(row.Item.Path, max(width-len([]rune(title))-len(indent)-6, 8))
		if selected {
			line = fmt.Sprintf("%s★ %s  %s", indent, title, path)
			break
		}
		return indent + styles.Star.Render("★") + " " + styles.Text.Render(title) + "  " + styles.FaintText.Render(path)
	}

	return styles.Selected.Width(width).Render(padRight(line, width))
}

// resizeList fits the list viewport to the window.
func (m *Model) resizeList() {
	m.list.Width = m.width
	m.list.Height = max(m.height-chromeHeight, 1)
	m.input.Width = max(m.width-20, 10)
	m.syncList()
}

// syncList re-renders the list content and keeps the cursor on screen.
func (m *Model) syncList() {
	lines := make([]string, len(m.rows))
	for i, row := range m.rows {
		lines[i] = m.renderRow(row, i == m.cursor)
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	if m.list.Height <= 0 {
		return
	}
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}
