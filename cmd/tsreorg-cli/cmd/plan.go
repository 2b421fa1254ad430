package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tsreorg/internal/application"
	"tsreorg/internal/application/commands"
)

var planCmd = &cobra.Command{
	Use:   "plan <moves-json>",
	Short: "Preview a reorganization without touching any file",
	Long: `Compute which files would move and which imports would be rewritten,
without performing any move or write.

The argument is a JSON object mapping origin to destination paths, both
relative to the source root.

Examples:
  tsreorg-cli plan '{"a.ts": "sub/a.ts"}'
  tsreorg-cli plan '{"util.ts": "lib/util.ts", "io.ts": "lib/io.ts"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := application.ParsePlan(args[0])
		if err != nil {
			return err
		}

		planCmd := commands.NewPlanCommand(GetRepo(), plan)
		result, err := planCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, u := range result.Updates {
			if u.Moved {
				fmt.Printf("  move %s -> %s\n", u.Origin, u.Destination)
			} else {
				fmt.Printf("  update imports in %s\n", u.Origin)
			}
		}
		fmt.Println()
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
