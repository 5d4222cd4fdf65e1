package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/tagname"
)

func newRenameCmd() *cobra.Command {
	var verbose, debug bool

	c := &cobra.Command{
		Use:   "rename OLD NEW FILE...",
		Short: "Rename a tag on files",
		Long: `Rename a tag on files.

Files carrying the tag OLD have it replaced with NEW. Files without OLD
are left untouched.

Examples:
  tag rename alpha gamma report{alpha}.txt
  tag rename alpha gamma *.txt`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			if !tagname.Valid(from) {
				return fmt.Errorf("%w: %q", tagname.ErrInvalidTag, from)
			}
			if !tagname.Valid(to) {
				return fmt.Errorf("%w: %q", tagname.ErrInvalidTag, to)
			}
			return runMutation("rename", args[2:], verbose, debug, func(s tagname.Set) {
				if s.Has(from) {
					s.Remove(from)
					s.Add(to)
				}
			})
		},
	}

	mutationFlags(c, &verbose, &debug)
	return c
}

func init() {
	rootCmd.AddCommand(newRenameCmd())
}
