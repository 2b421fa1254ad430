package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsreorg/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPlanMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tsreorg Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Source tree reorganizer"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString("\n")

	b.WriteString(styles.HelpKey.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Apply the plan (asks for confirmation)"))
	b.WriteString(helpLine("c", "Copy selected destination path"))
	b.WriteString("\n")

	b.WriteString(styles.HelpKey.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpKey.Render("Plan entries"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  a.ts -> sub/a.ts   file moved with git mv"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  b.ts (imports)     imports rewritten in place"))
	b.WriteString("\n")

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return "  " + styles.HelpKey.Render(keys) + "  " + styles.HelpDesc.Render(desc) + "\n"
}
