// Package rename is the mutation engine behind the six tag commands.
//
// Each command supplies a tagname.Mutation closure; the engine applies it to
// every file's parsed tag set, re-serializes the name with tags in ascending
// order and renames the file in place. Files are processed independently: a
// failure on one file is recorded and the rest still run, so partial
// completion across a batch is expected and visible via verbose output.
package rename

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tagtools/tag/internal/format"
	"github.com/tagtools/tag/internal/scan"
	"github.com/tagtools/tag/internal/tagname"
)

// ErrRenameCollision indicates the target name after mutation already exists.
var ErrRenameCollision = errors.New("rename collision")

// Options configures a mutation run.
type Options struct {
	Verbose bool // Print old -> new for every change
	DryRun  bool // Compute new names without touching the filesystem
}

// Change records one applied (or planned) rename.
type Change struct {
	From string
	To   string
}

// Result contains the outcome of a mutation run.
type Result struct {
	Changes []Change
}

// Run applies mutate to each named file. All paths are validated before any
// rename happens; per-file rename failures are joined into the returned
// error without aborting the batch.
func Run(w io.Writer, paths []string, opts Options, mutate tagname.Mutation) (Result, error) {
	var result Result

	files := make([]scan.File, 0, len(paths))
	for _, p := range paths {
		f, err := scan.FromPath(p)
		if err != nil {
			return result, err
		}
		files = append(files, f)
	}

	var errs []error
	for _, f := range files {
		mutate(f.Tags)

		base, _, ext := tagname.Parse(f.Name)
		name := tagname.Serialize(base, f.Tags.Sorted(), ext)
		if name == filepath.Base(f.Original) {
			continue
		}

		target := filepath.Join(f.Dir, name)
		if !opts.DryRun {
			if _, err := os.Lstat(target); err == nil {
				errs = append(errs, fmt.Errorf("%w: %s already exists", ErrRenameCollision, target))
				continue
			}
			if err := os.Rename(f.Original, target); err != nil {
				errs = append(errs, fmt.Errorf("renaming %s: %w", f.Original, err))
				continue
			}
		}

		result.Changes = append(result.Changes, Change{From: f.Original, To: target})
		if opts.Verbose {
			format.Change(w, f.Original, target)
		}
	}

	return result, errors.Join(errs...)
}
