package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/auditlog"
	"github.com/tagtools/tag/internal/find"
	"github.com/tagtools/tag/internal/tagname"
)

func newFindCmd() *cobra.Command {
	var all, null, recursive, tree bool

	c := &cobra.Command{
		Use:   "find TAG [PATH]",
		Short: "Find files carrying a tag",
		Long: `Find files carrying a tag.

Matching paths are printed in sorted order, one per line. PATH defaults
to the current directory.

Examples:
  tag find alpha
  tag find alpha docs -r -t`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			tag := args[0]
			if !tagname.Valid(tag) {
				return fmt.Errorf("%w: %q", tagname.ErrInvalidTag, tag)
			}
			path := pathArg(args, 1)

			opts := find.Options{
				Hidden:    searchDefault(c, "all", all, cfg.AllDefault()),
				Recursive: searchDefault(c, "recursive", recursive, cfg.RecursiveDefault()),
				Tree:      tree,
				Null:      null,
			}

			l := auditlog.Event("find", "search").Path(path).Detail("tag", tag)
			result, err := find.Run(Out(), path, tag, opts)
			l.Detail("matches", len(result.Paths)).Write(err)
			return err
		},
	}

	c.Flags().BoolVarP(&all, "all", "a", false, "Include hidden files")
	c.Flags().BoolVarP(&null, "null", "0", false, "Separate output with NUL instead of newline")
	c.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search subdirectories recursively")
	c.Flags().BoolVarP(&tree, "tree", "t", false, "Print matches as a directory tree")
	return c
}

func init() {
	rootCmd.AddCommand(newFindCmd())
}
