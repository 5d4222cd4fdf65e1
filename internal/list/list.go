// Package list reports the distinct tags in use under a directory.
package list

import (
	"fmt"
	"io"
	"sort"

	"github.com/tagtools/tag/internal/format"
	"github.com/tagtools/tag/internal/scan"
)

// Options configures a list operation.
type Options struct {
	Hidden    bool // Include hidden files
	Recursive bool // Include subdirectories recursively
	Count     bool // Append occurrence count per tag
	Null      bool // NUL-separated output instead of newline
}

// Result contains the outcome of a list operation.
type Result struct {
	Tags   []string       // distinct tags, ascending
	Counts map[string]int // files carrying each tag
}

// Run lists the tags on files under root and writes output to w.
func Run(w io.Writer, root string, opts Options) (Result, error) {
	result := Result{Counts: make(map[string]int)}

	err := scan.Run(root, scan.Options{Recursive: opts.Recursive, Hidden: opts.Hidden}, func(f scan.File) {
		for _, t := range f.Tags.Sorted() {
			result.Counts[t]++
		}
	})
	if err != nil {
		return result, err
	}

	for t := range result.Counts {
		result.Tags = append(result.Tags, t)
	}
	sort.Strings(result.Tags)

	entries := make([]string, 0, len(result.Tags))
	for _, t := range result.Tags {
		if opts.Count {
			entries = append(entries, fmt.Sprintf("%s: %d", t, result.Counts[t]))
		} else {
			entries = append(entries, t)
		}
	}
	return result, format.Lines(w, entries, opts.Null)
}
