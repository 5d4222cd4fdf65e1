package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/auditlog"
	"github.com/tagtools/tag/internal/list"
)

func newListCmd() *cobra.Command {
	var all, count, null, recursive bool

	c := &cobra.Command{
		Use:   "list [PATH]",
		Short: "List the tags in use",
		Long: `List the distinct tags on files under a directory.

Tags are printed in ascending order, one per line. PATH defaults to the
current directory.

Examples:
  tag list
  tag list docs -r -c`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := pathArg(args, 0)

			opts := list.Options{
				Hidden:    searchDefault(c, "all", all, cfg.AllDefault()),
				Recursive: searchDefault(c, "recursive", recursive, cfg.RecursiveDefault()),
				Count:     count,
				Null:      null,
			}

			l := auditlog.Event("list", "search").Path(path)
			result, err := list.Run(Out(), path, opts)
			l.Detail("tags", len(result.Tags)).Write(err)
			return err
		},
	}

	c.Flags().BoolVarP(&all, "all", "a", false, "Include hidden files")
	c.Flags().BoolVarP(&count, "count", "c", false, "Append the number of files carrying each tag")
	c.Flags().BoolVarP(&null, "null", "0", false, "Separate output with NUL instead of newline")
	c.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search subdirectories recursively")
	return c
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
