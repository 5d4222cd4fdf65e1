package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newClearCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "clear FILE...",
		Short: "Remove all tags from files",
		Long: `Remove all tags from files.

Files without tags are left untouched.

Examples:
  tag clear report{alpha}{beta}.txt
  tag clear *.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMutation("clear", args, verbose, debug, func(s tagname.Set) {
				s.Clear()
			})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newClearCmd())
}
