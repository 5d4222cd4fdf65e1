package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/auditlog"
	"github.com/tagtools/tag/internal/index"
)

func newIndexCmd() *cobra.Command {
	var all, debug, recursive, tree, verbose bool

	c := &cobra.Command{
		Use:   "index PATH OUTPUT",
		Short: "Build a symbolic link index of tagged files",
		Long: `Build a symbolic link index of tagged files.

Every tagged file under PATH is linked under OUTPUT once per ordering of
its tags, so the file is reachable from any tag it carries. Files whose
links would collide are disambiguated with their directory relative to
PATH. OUTPUT must not already exist with content.

Examples:
  tag index . links
  tag index docs links -r -t`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			path, output := args[0], args[1]

			opts := index.Options{
				Hidden:    searchDefault(c, "all", all, cfg.AllDefault()),
				Recursive: searchDefault(c, "recursive", recursive, cfg.RecursiveDefault()),
				Nested:    tree,
				Verbose:   verbose,
				DryRun:    debug,
			}

			l := auditlog.Event("index", "build").Path(path).Detail("output", output)
			if debug {
				l.Detail("dry_run", true)
			}
			result, err := index.Run(Out(), path, output, opts)
			l.Detail("links", result.Count).Write(err)
			return err
		},
	}

	c.Flags().BoolVarP(&all, "all", "a", false, "Include hidden files")
	c.Flags().BoolVarP(&debug, "debug", "d", false, "Make no changes to the file system")
	c.Flags().BoolVarP(&recursive, "recursive", "r", false, "Index subdirectories recursively")
	c.Flags().BoolVarP(&tree, "tree", "t", false, "Nest tag directories instead of flat permutations")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every link and a final count")
	return c
}

func init() {
	rootCmd.AddCommand(newIndexCmd())
}
