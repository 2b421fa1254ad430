package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tsreorg/internal/adapters/git"
	"tsreorg/internal/adapters/sqlite"
	"tsreorg/internal/application"
	"tsreorg/internal/application/commands"
	"tsreorg/internal/ports"
)

var applyNoJournal bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves-json>",
	Short: "Move files and rewrite imports",
	Long: `Move source files to their destinations with git mv and rewrite the
relative imports in every affected file.

The argument is a JSON object mapping origin to destination paths, both
relative to the source root. The first failed move or write aborts the
run; moves already applied stay applied (revert with git).

Examples:
  tsreorg-cli apply '{"a.ts": "sub/a.ts"}'
  tsreorg-cli apply --no-journal '{"a.ts": "sub/a.ts"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := application.ParsePlan(args[0])
		if err != nil {
			return err
		}

		mover, err := git.NewMover(GetRootPath())
		if err != nil {
			return err
		}

		var journal ports.Journal
		if !applyNoJournal {
			j := sqlite.NewJournal()
			if err := j.Open(GetRootPath()); err != nil {
				return err
			}
			defer j.Close()
			journal = j
		}

		applyCmd := commands.NewApplyCommand(GetRepo(), mover, journal, plan)
		result, err := applyCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, mv := range result.Moves {
			fmt.Printf("  git mv %s -> %s\n", mv.Origin, mv.Destination)
		}
		for _, u := range result.Updated {
			if !u.Moved {
				fmt.Printf("  updated imports in %s\n", u.Destination)
			}
		}
		fmt.Println()
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyNoJournal, "no-journal", false, "skip recording the run in the journal")
}
