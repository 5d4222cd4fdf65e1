package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newSortCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "sort FILE...",
		Short: "Sort the tags on files",
		Long: `Sort the tags on files into ascending order.

Files whose tags are already sorted are left untouched.

Examples:
  tag sort report{beta}{alpha}.txt
  tag sort *.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			// Serialization always emits sorted tags, so the identity
			// mutation is enough.
			return runMutation("sort", args, verbose, debug, func(tagname.Set) {})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newSortCmd())
}
