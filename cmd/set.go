package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newSetCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "set TAGS FILE...",
		Short: "Replace the tags on files",
		Long: `Replace the tags on files.

TAGS is a comma separated list of tags. Any existing tags are discarded
and the files carry exactly the given tags afterwards.

Examples:
  tag set alpha report{beta}.txt
  tag set alpha,beta *.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			tags, err := tagname.ParseList(args[0])
			if err != nil {
				return err
			}
			return runMutation("set", args[1:], verbose, debug, func(s tagname.Set) {
				s.Clear()
				s.Add(tags...)
			})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newSetCmd())
}
