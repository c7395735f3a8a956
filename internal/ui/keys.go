package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the favorites page.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Cluster    key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Items
	Open     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Remove   key.Binding
	Rename   key.Binding
	Assign   key.Binding
	Ungroup  key.Binding

	// Groups
	NewGroup         key.Binding
	Toggle           key.Binding
	DeleteGroup      key.Binding
	DeleteGroupItems key.Binding

	// Input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Cluster: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Switch cluster"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open favorite / toggle group"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "Move favorite up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "Move favorite down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "Remove favorite"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Rename favorite"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Move to next group"),
		),
		Ungroup: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Ungroup favorite"),
		),

		NewGroup: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New group"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Expand/collapse group"),
		),
		DeleteGroup: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Delete group, keep items"),
		),
		DeleteGroupItems: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Delete group and items"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// helpSections groups bindings for the help overlay.
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{title: "Navigation", bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom}},
		{title: "Favorites", bindings: []key.Binding{k.Open, k.MoveUp, k.MoveDown, k.Remove, k.Rename, k.Assign, k.Ungroup}},
		{title: "Groups", bindings: []key.Binding{k.NewGroup, k.Toggle, k.DeleteGroup, k.DeleteGroupItems}},
		{title: "General", bindings: []key.Binding{k.Cluster, k.CycleTheme, k.Help, k.Quit}},
	}
}
