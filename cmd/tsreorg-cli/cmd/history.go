package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsreorg/internal/adapters/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded reorganization runs",
	Long: `List past reorganization runs recorded in the journal, newest first.

Examples:
  tsreorg-cli history
  tsreorg-cli history --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := sqlite.NewJournal()
		if err := journal.Open(GetRootPath()); err != nil {
			return err
		}
		defer journal.Close()

		runs, err := journal.ListRuns(historyLimit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s  %s  moved %d, updated %d\n",
				run.StartedAt.Format("2006-01-02 15:04"), run.Root, run.Moved, run.Updated)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to show")
}
