package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tsreorg/internal/adapters/filesystem"
	"tsreorg/internal/adapters/git"
	"tsreorg/internal/adapters/sqlite"
	"tsreorg/internal/adapters/tui"
	"tsreorg/internal/application"
	"tsreorg/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, `usage: tsreorg '<moves-json>'`)
		os.Exit(1)
	}

	plan, err := application.ParsePlan(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootPath := config.SourceRoot()

	// Initialize adapters
	repo := filesystem.NewRepository(rootPath)

	mover, err := git.NewMover(rootPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	journal := sqlite.NewJournal()
	if err := journal.Open(rootPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	// Create and run TUI app
	app := tui.NewApp(repo, mover, journal, plan)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
