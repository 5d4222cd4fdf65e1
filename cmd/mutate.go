// mutate.go holds the shared runner behind the six tag mutation commands.
//
// The commands differ only in the closure they hand to the rename engine;
// flag handling, audit logging and error reporting are identical, so each
// command file stays a thin cobra definition.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/auditlog"
	"github.com/tagtools/tag/internal/rename"
	"github.com/tagtools/tag/internal/tagname"
)

// runMutation applies mutate to every named file and records the outcome.
func runMutation(source string, files []string, verbose, debug bool, mutate tagname.Mutation) error {
	l := auditlog.Event(source, "rename").Detail("files", len(files))

	result, err := rename.Run(Out(), files, rename.Options{Verbose: verbose, DryRun: debug}, mutate)

	l.Detail("changed", len(result.Changes))
	if debug {
		l.Detail("dry_run", true)
	}
	l.Write(err)
	return err
}

// mutationFlags registers the flags shared by every mutation command.
func mutationFlags(c *cobra.Command, verbose, debug *bool) {
	c.Flags().BoolVarP(verbose, "verbose", "v", false, "Print additional output")
	c.Flags().BoolVarP(debug, "debug", "d", false, "Make no changes to the file system")
}
