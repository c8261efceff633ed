package resx

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// stringTypeMarker opens the serialized-type tag of values that resolve
	// to plain strings despite carrying an explicit type attribute.
	stringTypeMarker = "System.String"
	// fileRefTypeMarker opens the type attribute of entries whose value is a
	// reference to an external file.
	fileRefTypeMarker = "System.Resources.ResXFileRef"
)

// placeholderPattern matches positional formatting placeholders of the form
// {0} or {0:format} inside a text value.
var placeholderPattern = regexp.MustCompile(`\{(\d+)(?::[^}]*)?\}`)

// Entry is one named data record parsed from a description file. Identity
// within a group is Name, case-sensitive.
type Entry struct {
	Name    string
	Value   string
	Comment string
	Type    string
}

// valueTypeTag returns the serialized-type tag embedded in the value: its
// second semicolon-delimited segment, or "" when the value carries none.
func (e Entry) valueTypeTag() string {
	parts := strings.SplitN(e.Value, ";", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// IsText reports whether the entry resolves to a plain string resource:
// either no type is declared, or the value's embedded serialized-type tag
// names the string type.
func (e Entry) IsText() bool {
	if e.Type == "" {
		return true
	}
	return strings.HasPrefix(e.valueTypeTag(), stringTypeMarker)
}

// IsFileRef reports whether the entry's declared type is a file reference.
func (e Entry) IsFileRef() bool {
	return strings.HasPrefix(e.Type, fileRefTypeMarker)
}

// FullTypeName returns the accessor's result type: "string" for text
// entries, the first comma-delimited segment of the value's serialized-type
// tag otherwise, or "" when the value carries no tag.
func (e Entry) FullTypeName() string {
	if e.IsText() {
		return "string"
	}
	tag := e.valueTypeTag()
	if tag == "" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return strings.TrimSpace(name)
}

// FormatArity scans a text value for positional placeholders and returns the
// maximum index found. The second result is false when the value contains no
// placeholder, in which case no formatting accessor is generated.
func (e Entry) FormatArity() (int, bool) {
	max := -1
	for _, m := range placeholderPattern.FindAllStringSubmatch(e.Value, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, max >= 0
}
