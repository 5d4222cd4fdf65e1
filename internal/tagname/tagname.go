// Package tagname implements the file name tag grammar.
//
// Tags live in the file name directly before the extension, each wrapped in
// braces: myfile{my-tag-1}{my-tag-2}.txt. A tag consists of letters, digits
// and the '-' character. Names with zero tag blocks are valid untagged names.
//
// Parsing rules:
//   - The extension is the final ".suffix" of the name (a leading dot alone,
//     as in ".profile", is not an extension)
//   - Tag blocks are stripped right to left from the stem; the first block
//     that is not a well-formed tag ends parsing and stays in the base
//   - Serialization emits one {tag} block per tag in the order given by the
//     caller, between base and extension
package tagname

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidTag indicates a tag contains characters outside [A-Za-z0-9-].
var ErrInvalidTag = errors.New("invalid tag")

// Parse splits a file name into base, tags and extension.
// The extension includes its leading dot and may be empty.
func Parse(name string) (base string, tags []string, ext string) {
	stem := name
	if i := strings.LastIndex(name, "."); i > 0 {
		stem, ext = name[:i], name[i:]
	}

	for strings.HasSuffix(stem, "}") {
		open := strings.LastIndex(stem, "{")
		if open < 0 {
			break
		}
		tag := stem[open+1 : len(stem)-1]
		if !Valid(tag) {
			break
		}
		tags = append([]string{tag}, tags...)
		stem = stem[:open]
	}

	return stem, tags, ext
}

// Serialize rebuilds a file name from base, tags and extension.
// Tags are emitted in the order given; callers own any ordering policy.
func Serialize(base string, tags []string, ext string) string {
	if len(tags) == 0 {
		return base + ext
	}
	var b strings.Builder
	b.WriteString(base)
	for _, t := range tags {
		b.WriteByte('{')
		b.WriteString(t)
		b.WriteByte('}')
	}
	b.WriteString(ext)
	return b.String()
}

// Valid reports whether tag is a non-empty string of letters, digits and '-'.
func Valid(tag string) bool {
	if tag == "" {
		return false
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// ParseList splits a comma-separated tag list as given on the command line,
// validating each element.
func ParseList(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if !Valid(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, p)
		}
		tags = append(tags, p)
	}
	return tags, nil
}

// Set is the set of tags parsed from one file name. Storage order is
// irrelevant; Sorted provides the canonical ascending order used whenever a
// name is re-serialized.
type Set map[string]struct{}

// NewSet builds a Set from a tag list.
func NewSet(tags ...string) Set {
	s := make(Set, len(tags))
	s.Add(tags...)
	return s
}

// Add inserts tags into the set. Adding a present tag is a no-op.
func (s Set) Add(tags ...string) {
	for _, t := range tags {
		s[t] = struct{}{}
	}
}

// Remove deletes tags from the set. Removing an absent tag is a no-op.
func (s Set) Remove(tags ...string) {
	for _, t := range tags {
		delete(s, t)
	}
}

// Clear empties the set.
func (s Set) Clear() {
	for t := range s {
		delete(s, t)
	}
}

// Has reports whether tag is in the set. Matching is case-sensitive.
func (s Set) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of tags in the set.
func (s Set) Len() int { return len(s) }

// Sorted returns the tags in ascending order.
func (s Set) Sorted() []string {
	tags := make([]string, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Mutation transforms a tag set in place. Each mutation command supplies one.
type Mutation func(Set)
