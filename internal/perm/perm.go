// Package perm is the tag permutation engine.
//
// Given a file's tag set it produces every placement path the set implies:
// ordered sequences of tags that become directory chains under the index
// output root. Paths are generated lazily as restartable sequences rather
// than materialised up front, since the flat count grows as N! in the number
// of tags.
//
// Determinism: tags are sorted ascending (and deduplicated) before
// permuting, and positions are filled in ascending order, so for equal tag
// content the sequence is identical in content and order on every run.
package perm

import (
	"iter"
	"sort"
)

// Flat yields every ordering of the tags as a placement path. For N distinct
// tags that is exactly N! paths, each of length N.
func Flat(tags []string) iter.Seq[[]string] {
	return paths(tags, false)
}

// Nested yields every non-empty prefix of every ordering, each exactly once.
// The full orderings of Flat are included as the maximal prefixes; the extra
// shorter paths are what places a file at every level of a nested tag tree.
func Nested(tags []string) iter.Seq[[]string] {
	return paths(tags, true)
}

// Paths selects Flat or Nested placement for the index builder.
func Paths(tags []string, nested bool) iter.Seq[[]string] {
	return paths(tags, nested)
}

func paths(tags []string, prefixes bool) iter.Seq[[]string] {
	sorted := dedupeSorted(tags)

	return func(yield func([]string) bool) {
		cur := make([]string, 0, len(sorted))
		used := make([]bool, len(sorted))

		// Walks the arrangement tree in ascending tag order. Each node of
		// the tree is a distinct prefix, so yielding on entry emits every
		// prefix exactly once without bookkeeping.
		var walk func() bool
		walk = func() bool {
			if prefixes && len(cur) > 0 {
				if !yield(clone(cur)) {
					return false
				}
			} else if !prefixes && len(cur) == len(sorted) && len(cur) > 0 {
				return yield(clone(cur))
			}

			for i, t := range sorted {
				if used[i] {
					continue
				}
				used[i] = true
				cur = append(cur, t)
				ok := walk()
				cur = cur[:len(cur)-1]
				used[i] = false
				if !ok {
					return false
				}
			}
			return true
		}
		walk()
	}
}

func dedupeSorted(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
