// Package format provides output formatting for CLI display.
//
// Centralises presentation concerns (delimiters, tree rendering, colour
// accents) so the operation packages focus on the work itself. All list
// output goes through Lines, which owns the newline-versus-NUL contract
// shared by the find and list commands.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var arrow = color.New(color.FgCyan)

// Lines writes entries one per line. With null set, entries are joined by
// NUL with no trailing terminator, for consumption by xargs -0 and friends.
func Lines(w io.Writer, entries []string, null bool) error {
	if null {
		_, err := io.WriteString(w, strings.Join(entries, "\x00"))
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(entries, "\n"))
	return err
}

// Change prints a source-to-destination line with the arrow accented.
// Used for verbose rename and index link reporting.
func Change(w io.Writer, from, to string) {
	fmt.Fprintf(w, "%s %s %s\n", from, arrow.Sprint("->"), to)
}

// TreeLines renders paths as a box-drawing directory tree rooted at root,
// returning the lines so callers can apply their own delimiter. Paths are
// shown relative to root; paths outside it are shown as given.
func TreeLines(root string, paths []string) []string {
	type node struct {
		children map[string]*node
	}
	top := &node{children: make(map[string]*node)}

	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			rel = p
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		cur := top
		for _, part := range parts {
			if cur.children[part] == nil {
				cur.children[part] = &node{children: make(map[string]*node)}
			}
			cur = cur.children[part]
		}
	}

	lines := []string{root}

	var walk func(n *node, prefix string)
	walk = func(n *node, prefix string) {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}
			lines = append(lines, prefix+connector+name)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}
			if len(child.children) > 0 {
				walk(child, pfx)
			}
		}
	}

	walk(top, "")
	return lines
}
