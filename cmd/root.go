// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE loads the optional config once and applies the
// colour setting; command files register themselves from their init()
// functions, so the root stays free of per-command wiring.

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/auditlog"
	"github.com/tagtools/tag/internal/config"
	"github.com/tagtools/tag/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "tag",
	Version: version.String(),
	Short:   "File name tag manager",
	Long: `tag: file name tag manager

File tags:
  - are in the file name directly before the extension
  - start with '{' and end with '}'
  - consist of letters, numbers and the '-' character

Examples:
  - myfile{my-tag-1}{my-tag-2}.txt
  - My Title Case File {My-Tag-1}{My-Tag-2}.txt`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		if !cfg.ColorEnabled() {
			color.NoColor = true
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := auditlog.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer auditlog.Close()

	if err := rootCmd.Execute(); err != nil {
		auditlog.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
