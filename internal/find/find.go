// Package find locates files carrying a given tag.
//
// This wraps a discovery scan with output formatting, separating the search
// itself from presentation. Matching is exact and case-sensitive.
package find

import (
	"io"
	"sort"

	"github.com/tagtools/tag/internal/format"
	"github.com/tagtools/tag/internal/scan"
)

// Options configures a find operation.
type Options struct {
	Hidden    bool // Include hidden files
	Recursive bool // Include subdirectories recursively
	Tree      bool // Print output as a directory tree
	Null      bool // NUL-separated output instead of newline
}

// Result contains the outcome of a find operation.
type Result struct {
	Paths []string
}

// Run searches root for files tagged with tag and writes output to w.
func Run(w io.Writer, root, tag string, opts Options) (Result, error) {
	var result Result

	err := scan.Run(root, scan.Options{Recursive: opts.Recursive, Hidden: opts.Hidden}, func(f scan.File) {
		if f.Tags.Has(tag) {
			result.Paths = append(result.Paths, f.Original)
		}
	})
	if err != nil {
		return result, err
	}
	sort.Strings(result.Paths)

	entries := result.Paths
	if opts.Tree {
		entries = format.TreeLines(root, result.Paths)
	}
	return result, format.Lines(w, entries, opts.Null)
}
