// Package grouping partitions description files into culture-variant groups
// sharing one culture-neutral key.
package grouping

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// cultureSegment matches a trailing culture code in a file's base name:
// two letters, optionally hyphen plus a two-letter region ("en", "en-US").
var cultureSegment = regexp.MustCompile(`^[a-zA-Z]{2}(?:-[a-zA-Z]{2})?$`)

// Group is one logical resource catalog: the set of culture-variant files
// sharing a culture-neutral key. Paths are sorted by extension-stripped path
// (full path as tiebreaker), which places the culture-neutral file ahead of
// its variants and fixes the first-occurrence-wins order used when entries
// are merged.
type Group struct {
	Key   string
	Paths []string
}

// Key derives the culture-neutral grouping key for a path: the path with its
// extension stripped and, when present, a trailing culture segment removed.
// "a.resx", "a.en.resx" and "a.en-us.resx" all map to "a".
func Key(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if i := strings.LastIndex(base, "."); i >= 0 && cultureSegment.MatchString(base[i+1:]) {
		base = base[:i]
	}
	return base
}

// Culture returns the culture segment Key strips from the path, or "" for a
// culture-neutral file.
func Culture(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if i := strings.LastIndex(base, "."); i >= 0 && cultureSegment.MatchString(base[i+1:]) {
		return base[i+1:]
	}
	return ""
}

// CanonicalCulture normalizes a culture segment for display ("en-us" becomes
// "en-US"). Segments that are not well-formed language tags pass through
// unchanged.
func CanonicalCulture(segment string) string {
	if segment == "" {
		return ""
	}
	tag, err := language.Parse(segment)
	if err != nil {
		return segment
	}
	return tag.String()
}

// Partition groups paths by culture-neutral key. Key comparison is
// case-insensitive; the canonical key spelling is taken from each group's
// first path so the result does not depend on input order. Groups are
// returned sorted by key (ordinal), duplicate paths collapsed.
func Partition(paths []string) []Group {
	byKey := make(map[string]*Group)
	for _, p := range paths {
		lower := strings.ToLower(Key(p))
		g := byKey[lower]
		if g == nil {
			g = &Group{}
			byKey[lower] = g
		}
		g.Paths = append(g.Paths, p)
	}

	groups := make([]Group, 0, len(byKey))
	for _, g := range byKey {
		sortPaths(g.Paths)
		g.Paths = dedupe(g.Paths)
		g.Key = Key(g.Paths[0])
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// sortPaths orders a group's files by extension-stripped path, full path as
// tiebreaker. Stripping the extension first is what puts "a.resx" ahead of
// "a.fr.resx", keeping the culture-neutral file authoritative in the merge.
func sortPaths(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		a := strings.TrimSuffix(paths[i], filepath.Ext(paths[i]))
		b := strings.TrimSuffix(paths[j], filepath.Ext(paths[j]))
		if a != b {
			return a < b
		}
		return paths[i] < paths[j]
	})
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}
