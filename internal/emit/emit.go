// Package emit renders the generated accessor source and name-constant
// catalog for one resource group. Rendering is a pure function of the
// resolved configuration and the merged entry list.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"resxgen/internal/ident"
	"resxgen/internal/resolve"
	"resxgen/internal/resx"
)

// File describes one constituent description file for the artifact header.
type File struct {
	Path    string
	Culture string // canonical culture tag, "" for the neutral file
}

// ArtifactName derives the emitted artifact's name from the group key.
func ArtifactName(key string) string {
	flat := strings.ReplaceAll(key, "\\", ".")
	flat = strings.ReplaceAll(flat, "/", ".")
	return flat + ".g.cs"
}

// Artifact renders the full artifact text for one group: the resolution
// header, then — when entries is non-nil and a resource name resolved — the
// accessor class and name-constant catalog, nested under the namespace when
// one resolved. A nil entries slice (failed parse or unresolved resource
// name) yields the header alone.
func Artifact(key string, files []File, cfg resolve.Config, entries []resx.Entry) string {
	var b strings.Builder
	writeHeader(&b, key, files, cfg)

	if entries == nil || cfg.ResourceName == "" {
		return b.String()
	}

	b.WriteString("\nusing System.Globalization;\nusing System.Resources;\n")

	indent := ""
	if cfg.Namespace != "" {
		fmt.Fprintf(&b, "\nnamespace %s\n{\n", cfg.Namespace)
		indent = "    "
	} else {
		b.WriteString("\n")
	}

	writeClass(&b, indent, cfg, entries)

	if cfg.Namespace != "" {
		b.WriteString("}\n")
	}
	return b.String()
}

// writeHeader records every resolved and derived value. The header is
// human-readable and never machine-parsed.
func writeHeader(b *strings.Builder, key string, files []File, cfg resolve.Config) {
	b.WriteString("// <auto-generated/>\n//\n")
	fmt.Fprintf(b, "// group key: %s\n", key)
	b.WriteString("// files:\n")
	for _, f := range files {
		if f.Culture != "" {
			fmt.Fprintf(b, "//   %s (%s)\n", f.Path, f.Culture)
		} else {
			fmt.Fprintf(b, "//   %s\n", f.Path)
		}
	}
	b.WriteString("// options:\n")
	for _, r := range cfg.Trace {
		resolved := r.Resolved
		if resolved == "" {
			resolved = "(unset)"
		}
		fmt.Fprintf(b, "//   %s: %s", r.Option, resolved)
		if len(r.Inputs) > 0 {
			fmt.Fprintf(b, " [%s]", strings.Join(r.Inputs, ", "))
		}
		b.WriteString("\n")
	}
}

func writeClass(b *strings.Builder, indent string, cfg resolve.Config, entries []resx.Entry) {
	modifier := "static "
	if cfg.UseInstanceMembers {
		modifier = ""
	}

	fmt.Fprintf(b, "%sinternal partial class %s\n%s{\n", indent, cfg.ClassName, indent)
	m := indent + "    "

	fmt.Fprintf(b, "%sprivate %sResourceManager resourceManager;\n\n", m, modifier)
	fmt.Fprintf(b, "%spublic %sResourceManager ResourceManager =>\n", m, modifier)
	fmt.Fprintf(b, "%s    resourceManager ?? (resourceManager = new ResourceManager(%s, typeof(%s).Assembly));\n\n",
		m, csString(cfg.ResourceName), cfg.ClassName)
	fmt.Fprintf(b, "%spublic %sCultureInfo Culture { get; set; }\n", m, modifier)

	// Value accessors are sorted by entry name; the Names catalog below keeps
	// the original merge order. Entries without a name are skipped entirely.
	named := make([]resx.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			named = append(named, e)
		}
	}
	sorted := make([]resx.Entry, len(named))
	copy(sorted, named)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, e := range sorted {
		writeAccessors(b, m, modifier, e)
	}

	fmt.Fprintf(b, "\n%spublic static class Names\n%s{\n", m, m)
	for _, e := range named {
		fmt.Fprintf(b, "%s    public const string %s = %s;\n", m, ident.Sanitize(e.Name), csString(e.Name))
	}
	fmt.Fprintf(b, "%s}\n", m)

	fmt.Fprintf(b, "%s}\n", indent)
}

func writeAccessors(b *strings.Builder, m, modifier string, e resx.Entry) {
	name := ident.Sanitize(e.Name)
	if e.Comment != "" {
		fmt.Fprintf(b, "\n%s/// <summary>%s</summary>\n", m, xmlEscape(e.Comment))
	} else {
		b.WriteString("\n")
	}

	if !e.IsText() {
		typeName := e.FullTypeName()
		if typeName == "" {
			fmt.Fprintf(b, "%spublic %sobject %s =>\n%s    ResourceManager.GetObject(Names.%s, Culture);\n",
				m, modifier, name, m, name)
			return
		}
		fmt.Fprintf(b, "%spublic %s%s %s =>\n%s    (%s)ResourceManager.GetObject(Names.%s, Culture);\n",
			m, modifier, typeName, name, m, typeName, name)
		return
	}

	fmt.Fprintf(b, "%spublic %sstring %s =>\n%s    ResourceManager.GetString(Names.%s, Culture);\n",
		m, modifier, name, m, name)

	max, ok := e.FormatArity()
	if !ok {
		return
	}
	params := make([]string, 0, max+1)
	args := make([]string, 0, max+1)
	for i := 0; i <= max; i++ {
		params = append(params, fmt.Sprintf("object p%d", i))
		args = append(args, fmt.Sprintf("p%d", i))
	}

	fmt.Fprintf(b, "\n%spublic %sstring Format%s(%s) =>\n%s    string.Format(Culture, %s, %s);\n",
		m, modifier, name, strings.Join(params, ", "), m, name, strings.Join(args, ", "))
	fmt.Fprintf(b, "\n%spublic %sstring Format%s(CultureInfo culture, %s) =>\n%s    string.Format(culture, %s, %s);\n",
		m, modifier, name, strings.Join(params, ", "), m, name, strings.Join(args, ", "))
}

// csString renders a C# string literal.
func csString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// xmlEscape escapes comment text for a documentation summary.
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
