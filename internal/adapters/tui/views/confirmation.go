package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsreorg/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for the apply confirmation
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModel asks for confirmation before the reorganization is applied
type ConfirmModel struct {
	ViewState
	Keys    ConfirmKeyMap
	Moves   int
	Updates int
}

// NewConfirmModel creates a new confirmation model with default keys
func NewConfirmModel() *ConfirmModel {
	return &ConfirmModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetCounts sets the pending plan's counts for display
func (m *ConfirmModel) SetCounts(moves, updates int) {
	m.Moves = moves
	m.Updates = updates
}

// HandleKeyMsg processes key messages for the confirmation.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// View renders the confirmation
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Apply reorganization?"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d files will be moved with git mv and imports rewritten in %d files.", m.Moves, m.Updates))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("A failed move aborts the run; prior moves stay applied. Revert with git."))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" confirm   "))
	b.WriteString(styles.HelpKey.Render("n/esc"))
	b.WriteString(styles.HelpDesc.Render(" cancel"))

	return styles.App.Render(b.String())
}
