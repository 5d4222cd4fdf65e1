// Package scan provides file discovery for the search and index commands.
//
// A scan walks a root directory, optionally recursively, parses every file
// name through the tag codec and yields a File record per entry. Hidden
// entries (leading dot) are skipped unless requested; when recursing, the
// filter applies to directories as well, so nothing under a hidden directory
// is visited.
//
// Traversal uses os.Root so symlinks inside the tree cannot escape the
// search root.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tagtools/tag/internal/tagname"
)

// ErrInvalidPath indicates a search or file argument does not exist.
var ErrInvalidPath = errors.New("invalid path")

// File is one discovered filesystem entry. Records are created fresh on
// every scan and never persisted; after a rename the file must be
// re-discovered to observe its new state.
type File struct {
	Original string      // full path as found
	Dir      string      // containing directory
	Name     string      // base name with tags stripped, extension kept
	Tags     tagname.Set // tags parsed from the name
}

// Options configures a scan.
type Options struct {
	Recursive bool // Descend into subdirectories
	Hidden    bool // Include hidden files and directories
}

// Run walks root and calls fn for every discovered file.
func Run(root string, opts Options, fn func(File)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, root)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, root)
	}

	r, err := os.OpenRoot(root)
	if err != nil {
		return fmt.Errorf("opening search root: %w", err)
	}
	defer r.Close()

	return scanDir(r, root, "", opts, fn)
}

// scanDir reads one directory level within the root, recursing when asked.
// dir is the path relative to the root, empty at the top.
func scanDir(r *os.Root, root, dir string, opts Options, fn func(File)) error {
	path := dir
	if path == "" {
		path = "."
	}

	f, err := r.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()

		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if dir != "" {
			rel = filepath.Join(dir, name)
		}

		if entry.IsDir() {
			if !opts.Recursive {
				continue
			}
			if err := scanDir(r, root, rel, opts, fn); err != nil {
				return err
			}
			continue
		}

		// Regular files and symlinks only; sockets and pipes are not taggable.
		if t := entry.Type(); !t.IsRegular() && t&fs.ModeSymlink == 0 {
			continue
		}

		fn(parse(filepath.Join(root, rel)))
	}

	return nil
}

// FromPath builds a File record for an explicitly named file, as passed to
// the mutation commands.
func FromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	return parse(path), nil
}

func parse(path string) File {
	base, tags, ext := tagname.Parse(filepath.Base(path))
	return File{
		Original: path,
		Dir:      filepath.Dir(path),
		Name:     base + ext,
		Tags:     tagname.NewSet(tags...),
	}
}
