package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studiowebux/porter/internal/config"
	"github.com/studiowebux/porter/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "porter",
	Short: "porter - terminal HTTP request workbench",
	Long: `porter is a keyboard-driven terminal workbench for composing and sending
HTTP requests.

The last request is saved to the collection file and restored on the next
start. Settings are read from ~/.porter/config.yaml (or $PORTER_CONFIG) and
PORTER_* environment variables.

Examples:
  porter            # Start the workbench
  porter --help     # Show help
  porter --version  # Show version`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load("")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return tui.Run(cfg, version)
	},
}
