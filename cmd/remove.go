package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newRemoveCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "remove TAGS FILE...",
		Short: "Remove tags from files",
		Long: `Remove tags from files.

TAGS is a comma separated list of tags. Tags not present on a file are
ignored.

Examples:
  tag remove alpha report{alpha}.txt
  tag remove alpha,beta *.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			tags, err := tagname.ParseList(args[0])
			if err != nil {
				return err
			}
			return runMutation("remove", args[1:], verbose, debug, func(s tagname.Set) {
				s.Remove(tags...)
			})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}
