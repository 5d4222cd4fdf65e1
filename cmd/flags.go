// flags.go holds shared CLI state and small helpers used across commands.
//
// Design: the output writer is a package variable so tests can capture
// command output; config values only seed search-flag defaults and an
// explicit flag always wins, resolved through searchDefault.

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagtools/tag/internal/config"
)

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// cfg is the loaded configuration, set by the root PersistentPreRunE.
var cfg = &config.Config{}

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// searchDefault resolves a search flag against its config default: the flag
// value when given explicitly, otherwise the configured default.
func searchDefault(c *cobra.Command, name string, value, configured bool) bool {
	if c.Flags().Changed(name) {
		return value
	}
	return value || configured
}

// pathArg returns the optional trailing path argument, defaulting to ".".
func pathArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "."
}
