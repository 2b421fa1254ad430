package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tsreorg/internal/adapters/filesystem"
	"tsreorg/internal/config"
	"tsreorg/internal/ports"
)

var (
	rootPath string
	repo     ports.SourceRepository
)

var rootCmd = &cobra.Command{
	Use:   "tsreorg-cli",
	Short: "CLI for reorganizing TypeScript source trees",
	Long: `tsreorg-cli moves TypeScript source files to new locations and rewrites
the relative imports in every affected file so the module graph keeps
resolving.

Moves are performed with git mv so file history is preserved. The tool is
meant to run against a clean version-controlled tree: a failed run is
reverted wholesale with git.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(rootPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.SourceRoot(), "path to the source root")
}

// GetRepo returns the initialized repository
func GetRepo() ports.SourceRepository {
	return repo
}

// GetRootPath returns the configured source root
func GetRootPath() string {
	return rootPath
}
