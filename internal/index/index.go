// Package index builds the symlink index for tagged files.
//
// Every file with at least one tag claims a set of placement paths, one per
// tag permutation (see internal/perm). The builder accumulates a map from
// candidate destination to the files claiming it, then resolves each
// destination in ascending order: a single claimant links under its bare
// name, multiple claimants are disambiguated with an identifier derived from
// each file's directory relative to the search root.
//
// Map construction and collision resolution are pure; filesystem mutation is
// isolated behind the FS seam so a dry run shares every code path except the
// final calls.
package index

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tagtools/tag/internal/format"
	"github.com/tagtools/tag/internal/perm"
	"github.com/tagtools/tag/internal/progress"
	"github.com/tagtools/tag/internal/scan"
	"github.com/tagtools/tag/internal/tagname"
)

// ErrDestinationConflict indicates the output directory already has content.
var ErrDestinationConflict = errors.New("destination conflict")

// ErrLinkCollision indicates two files resolved to the same link path even
// after disambiguation.
var ErrLinkCollision = errors.New("link collision")

// FS is the executor seam for filesystem mutation.
type FS interface {
	MkdirAll(path string) error
	Symlink(target, link string) error
}

type osFS struct{}

func (osFS) MkdirAll(path string) error        { return os.MkdirAll(path, 0755) }
func (osFS) Symlink(target, link string) error { return os.Symlink(target, link) }

// nopFS performs no mutation; the dry-run executor.
type nopFS struct{}

func (nopFS) MkdirAll(string) error        { return nil }
func (nopFS) Symlink(string, string) error { return nil }

// Options configures an index run.
type Options struct {
	Recursive bool // Descend into subdirectories of the search path
	Hidden    bool // Include hidden files
	Nested    bool // Nested tag tree placement instead of flat permutations
	Verbose   bool // Report every link and a final count
	DryRun    bool // Compute and report links without touching the filesystem
}

// Link is one resolved symbolic link: Path points at Target.
type Link struct {
	Path   string
	Target string
}

// Result contains the outcome of an index run.
type Result struct {
	Links []Link
	Count int
}

// Run builds the index of tagged files under path into output.
// It refuses to run if output already exists with content, before any
// mutation. Per-link failures are joined and returned after the run.
func Run(w io.Writer, path, output string, opts Options) (Result, error) {
	var result Result

	root, err := filepath.Abs(path)
	if err != nil {
		return result, err
	}
	if _, err := os.Stat(root); err != nil {
		return result, fmt.Errorf("%w: %s", scan.ErrInvalidPath, path)
	}

	if entries, err := os.ReadDir(output); err == nil && len(entries) > 0 {
		return result, fmt.Errorf("%w: index directory %q exists with content; delete it or choose a different path",
			ErrDestinationConflict, output)
	}

	var files []scan.File
	err = scan.Run(root, scan.Options{Recursive: opts.Recursive, Hidden: opts.Hidden}, func(f scan.File) {
		if f.Tags.Len() > 0 {
			files = append(files, f)
		}
	})
	if err != nil {
		return result, err
	}

	placements := Build(files, output, opts.Nested)
	links, resolveErr := Resolve(placements, root)
	result.Links = links
	result.Count = len(links)

	var fs FS = osFS{}
	if opts.DryRun {
		fs = nopFS{}
	}

	prog := progress.New("Indexing", len(links))
	defer prog.Done()

	var errs []error
	if resolveErr != nil {
		errs = append(errs, resolveErr)
	}
	for _, l := range links {
		if err := fs.MkdirAll(filepath.Dir(l.Path)); err != nil {
			errs = append(errs, err)
			continue
		}
		if opts.Verbose {
			format.Change(w, l.Path, l.Target)
		}
		if err := fs.Symlink(l.Target, l.Path); err != nil {
			errs = append(errs, fmt.Errorf("linking %s: %w", l.Path, err))
			continue
		}
		prog.Increment()
		prog.Print()
	}

	if opts.Verbose && result.Count > 0 {
		message := "indexed"
		if opts.DryRun {
			message = "to index"
		}
		fmt.Fprintf(w, "\n%d files %s.\n", result.Count, message)
	}

	return result, errors.Join(errs...)
}

// Build accumulates the placement map: every file with tags claims one
// candidate destination per placement path, keyed by the output root, the
// path's segments and the file's bare name.
func Build(files []scan.File, output string, nested bool) map[string][]scan.File {
	placements := make(map[string][]scan.File)
	for _, f := range files {
		for segs := range perm.Paths(f.Tags.Sorted(), nested) {
			key := filepath.Join(append(append([]string{output}, segs...), f.Name)...)
			placements[key] = append(placements[key], f)
		}
	}
	return placements
}

// Resolve assigns a link name to every (destination, file) pair, processing
// destinations in ascending order for deterministic output. A destination
// claimed once keeps the bare file name; shared destinations disambiguate
// with the file's directory path relative to root, segments joined by '-',
// inserted before the extension. Files directly in root keep the bare name.
//
// A link path assigned twice in one run is reported as ErrLinkCollision for
// the later file and skipped rather than silently overwritten.
func Resolve(placements map[string][]scan.File, root string) ([]Link, error) {
	keys := make([]string, 0, len(placements))
	for k := range placements {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var links []Link
	var errs []error
	assigned := make(map[string]string)

	for _, key := range keys {
		claimants := placements[key]
		parent := filepath.Dir(key)

		for _, f := range claimants {
			name := f.Name
			if len(claimants) > 1 {
				name = disambiguate(f, root)
			}
			dst := filepath.Join(parent, name)

			if prev, ok := assigned[dst]; ok {
				errs = append(errs, fmt.Errorf("%w: %s claimed by both %s and %s", ErrLinkCollision, dst, prev, f.Original))
				continue
			}
			assigned[dst] = f.Original
			links = append(links, Link{Path: dst, Target: f.Original})
		}
	}

	return links, errors.Join(errs...)
}

// disambiguate derives the link name for a file sharing its destination:
// the directory segments between root and the file's directory, joined by
// '-', appended to the base name before the extension. A file directly in
// root keeps its bare name.
func disambiguate(f scan.File, root string) string {
	rel, err := filepath.Rel(root, f.Dir)
	if err != nil || rel == "." {
		return f.Name
	}
	id := strings.Join(strings.Split(filepath.ToSlash(rel), "/"), "-")
	base, _, ext := tagname.Parse(f.Name)
	return base + "-" + id + ext
}
