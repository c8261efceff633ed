package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStripsExtensionAndCulture(t *testing.T) {
	cases := map[string]string{
		"a.resx":              "a",
		"a.en.resx":           "a",
		"a.en-us.resx":        "a",
		"Sub/Strings.fr.resx": "Sub/Strings",
		"Strings.resx":        "Strings",
	}
	for path, want := range cases {
		assert.Equal(t, want, Key(path), "key(%s)", path)
	}
}

func TestKeyKeepsNonCultureSegments(t *testing.T) {
	// Segments that do not match the two-letter culture shape stay part of
	// the key.
	assert.Equal(t, "a.english", Key("a.english.resx"))
	assert.Equal(t, "a.e", Key("a.e.resx"))
	assert.Equal(t, "a.en-usa", Key("a.en-usa.resx"))
	assert.Equal(t, "a.123", Key("a.123.resx"))
}

func TestCulture(t *testing.T) {
	assert.Equal(t, "", Culture("a.resx"))
	assert.Equal(t, "en", Culture("a.en.resx"))
	assert.Equal(t, "en-us", Culture("a.en-us.resx"))
	assert.Equal(t, "", Culture("a.english.resx"))
}

func TestCanonicalCulture(t *testing.T) {
	assert.Equal(t, "en-US", CanonicalCulture("en-us"))
	assert.Equal(t, "fr", CanonicalCulture("fr"))
	assert.Equal(t, "", CanonicalCulture(""))
}

func TestPartitionCollapsesCultureVariants(t *testing.T) {
	groups := Partition([]string{"a.en-us.resx", "b.resx", "a.resx", "a.en.resx"})
	require.Len(t, groups, 2)

	assert.Equal(t, "a", groups[0].Key)
	assert.Equal(t, []string{"a.resx", "a.en.resx", "a.en-us.resx"}, groups[0].Paths)
	assert.Equal(t, "b", groups[1].Key)
	assert.Equal(t, []string{"b.resx"}, groups[1].Paths)
}

// The culture-neutral file sorts first within its group even though a plain
// lexicographic comparison of full paths would order it last.
func TestPartitionNeutralFileFirst(t *testing.T) {
	groups := Partition([]string{"Sub/Strings.fr.resx", "Sub/Strings.resx"})
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"Sub/Strings.resx", "Sub/Strings.fr.resx"}, groups[0].Paths)
}

func TestPartitionIsAPartition(t *testing.T) {
	paths := []string{"x/a.resx", "x/a.fr.resx", "y/b.resx", "y/b.de.resx", "c.resx"}
	groups := Partition(paths)

	seen := make(map[string]int)
	for _, g := range groups {
		for _, p := range g.Paths {
			seen[p]++
		}
	}
	require.Len(t, seen, len(paths), "every path belongs to a group")
	for p, n := range seen {
		assert.Equal(t, 1, n, "path %s must belong to exactly one group", p)
	}
}

func TestPartitionInvariantToInputOrder(t *testing.T) {
	a := Partition([]string{"a.resx", "a.en.resx", "B.resx", "b.fr.resx"})
	b := Partition([]string{"b.fr.resx", "a.en.resx", "B.resx", "a.resx"})
	assert.Equal(t, a, b)
}

func TestPartitionCaseInsensitiveKeys(t *testing.T) {
	groups := Partition([]string{"Strings.resx", "strings.fr.resx"})
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"Strings.resx", "strings.fr.resx"}, groups[0].Paths)
	// Canonical spelling comes from the lexicographically first path.
	assert.Equal(t, "Strings", groups[0].Key)
}

func TestPartitionDropsDuplicatePaths(t *testing.T) {
	groups := Partition([]string{"a.resx", "a.resx"})
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"a.resx"}, groups[0].Paths)
}
