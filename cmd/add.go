package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newAddCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "add TAGS FILE...",
		Short: "Add tags to files",
		Long: `Add tags to files.

TAGS is a comma separated list of tags. Tags already present on a file
are kept, and the file's tags are written back in sorted order.

Examples:
  tag add alpha report.txt
  tag add alpha,beta *.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			tags, err := tagname.ParseList(args[0])
			if err != nil {
				return err
			}
			return runMutation("add", args[1:], verbose, debug, func(s tagname.Set) {
				s.Add(tags...)
			})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newAddCmd())
}
