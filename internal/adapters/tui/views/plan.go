package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tsreorg/internal/adapters/tui/styles"
	"tsreorg/internal/application/commands"
	"tsreorg/internal/domain"
	"tsreorg/internal/ports"
)

// PlanKeyMap defines key bindings for the plan browser
type PlanKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Apply key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var PlanKeys = PlanKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy destination"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// PlanModel is the model for the plan browser view
type PlanModel struct {
	ViewState
	repo      ports.SourceRepository
	plan      domain.MovePlan
	updates   []domain.FileUpdate
	paginator *Paginator
	applied   bool
}

// NewPlanModel creates a new plan browser model
func NewPlanModel(repo ports.SourceRepository, plan domain.MovePlan) *PlanModel {
	return &PlanModel{
		repo:      repo,
		plan:      plan,
		paginator: NewPaginator(20),
	}
}

// Init initializes the plan browser
func (m *PlanModel) Init() tea.Cmd {
	return m.loadPlan
}

func (m *PlanModel) loadPlan() tea.Msg {
	cmd := commands.NewPlanCommand(m.repo, m.plan)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return ErrMsg{err}
	}
	return planLoadedMsg{result.Updates}
}

type planLoadedMsg struct {
	updates []domain.FileUpdate
}

// Counts returns how many files the plan moves and updates
func (m *PlanModel) Counts() (moved, updated int) {
	return len(m.plan), len(m.updates)
}

// Update handles messages for the plan browser
func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		m.updates = msg.updates
		m.paginator.SetTotal(len(m.updates))
		return m, nil

	case AppliedMsg:
		m.applied = true
		m.SetMessage(msg.Message, false)
		return m, nil

	case ErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, PlanKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PlanKeys.Up):
			m.paginator.CursorUp()
			return m, nil

		case key.Matches(msg, PlanKeys.Down):
			m.paginator.CursorDown()
			return m, nil

		case key.Matches(msg, PlanKeys.Copy):
			if u, ok := m.selected(); ok {
				clipboard.WriteAll(u.Destination)
				m.SetMessage(fmt.Sprintf("Copied %s", u.Destination), false)
			}
			return m, nil

		case key.Matches(msg, PlanKeys.Apply):
			if m.applied {
				m.SetMessage("Already applied", true)
				return m, nil
			}
			if len(m.updates) == 0 {
				m.SetMessage("Nothing to apply", true)
				return m, nil
			}
			return m, func() tea.Msg { return ShowConfirmMsg{} }

		case key.Matches(msg, PlanKeys.Help):
			return m, func() tea.Msg { return ShowHelpMsg{} }
		}
	}

	return m, nil
}

// View renders the plan browser
func (m *PlanModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tsreorg"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%s — %d moves, %d files touched", m.repo.Root(), len(m.plan), len(m.updates))))
	b.WriteString("\n\n")

	if len(m.updates) == 0 {
		b.WriteString(styles.MutedText.Render("Nothing to do."))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		line := entryLine(m.updates[i])
		if i == m.paginator.Cursor() {
			line = styles.EntrySelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	return styles.App.Render(b.String())
}

// entryLine formats one plan entry for display
func entryLine(u domain.FileUpdate) string {
	if u.Moved {
		return styles.EntryMove.Render(fmt.Sprintf("%s -> %s", u.Origin, u.Destination))
	}
	return styles.EntryUpdate.Render(fmt.Sprintf("%s (imports)", u.Origin))
}

func (m *PlanModel) selected() (domain.FileUpdate, bool) {
	c := m.paginator.Cursor()
	if c < 0 || c >= len(m.updates) {
		return domain.FileUpdate{}, false
	}
	return m.updates[c], true
}

func (m *PlanModel) statusBar() string {
	page := fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())
	keys := "a apply · c copy · ? help · q quit"
	return styles.StatusBar.Render(page + "  " + styles.StatusText.Render(keys))
}
