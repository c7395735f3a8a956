package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/clusterfav/internal/favorites"
	"github.com/five82/clusterfav/internal/persist"
)

// changeMsg carries a store change notification.
type changeMsg favorites.Change

// subscriptionClosedMsg is sent once the store stops publishing.
type subscriptionClosedMsg struct{}

// saveErrMsg reports a failed background save.
type saveErrMsg struct{ err error }

// waitForChange blocks on the next store change.
func waitForChange(sub favorites.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-sub
		if !ok {
			return subscriptionClosedMsg{}
		}
		return changeMsg(c)
	}
}

// watchSave reports the outcome of a save when it fails.
func watchSave(p *persist.Pending) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		<-p.Done()
		if err := p.Err(); err != nil {
			return saveErrMsg{err: err}
		}
		return nil
	}
}
