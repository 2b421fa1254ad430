package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tsreorg/internal/adapters/tui/views"
	"tsreorg/internal/application/commands"
	"tsreorg/internal/domain"
	"tsreorg/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPlan ViewState = iota
	ViewConfirm
	ViewHelp
)

// applyConfirmedMsg triggers the apply run after confirmation
type applyConfirmedMsg struct{}

// App is the main TUI application model
type App struct {
	repo    ports.SourceRepository
	mover   ports.Mover
	journal ports.Journal
	plan    domain.MovePlan

	state    ViewState
	planView *views.PlanModel
	confirm  *views.ConfirmModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(repo ports.SourceRepository, mover ports.Mover, journal ports.Journal, plan domain.MovePlan) *App {
	return &App{
		repo:     repo,
		mover:    mover,
		journal:  journal,
		plan:     plan,
		state:    ViewPlan,
		planView: views.NewPlanModel(repo, plan),
		confirm:  views.NewConfirmModel(),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.planView.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.planView.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToPlanMsg:
		a.state = ViewPlan
		return a, nil

	case views.ShowConfirmMsg:
		moved, updated := a.planView.Counts()
		a.confirm.SetCounts(moved, updated)
		a.state = ViewConfirm
		return a, nil

	case views.ShowHelpMsg:
		a.state = ViewHelp
		return a, nil

	case applyConfirmedMsg:
		a.state = ViewPlan
		return a, a.runApply

	case tea.KeyMsg:
		if a.state == ViewConfirm {
			handled, cmd := a.confirm.HandleKeyMsg(msg,
				func() tea.Msg { return applyConfirmedMsg{} },
				func() tea.Msg { return views.SwitchToPlanMsg{} },
			)
			if handled {
				return a, cmd
			}
			return a, nil
		}
	}

	switch a.state {
	case ViewPlan:
		_, cmd := a.planView.Update(msg)
		return a, cmd
	case ViewHelp:
		_, cmd := a.help.Update(msg)
		return a, cmd
	}

	return a, nil
}

// runApply executes the reorganization and reports the outcome to the plan view
func (a *App) runApply() tea.Msg {
	cmd := commands.NewApplyCommand(a.repo, a.mover, a.journal, a.plan)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return views.ErrMsg{Err: err}
	}
	return views.AppliedMsg{Message: result.Message}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.planView.View()
	}
}
