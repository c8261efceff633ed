package diag

import "fmt"

// Kind identifies one of the structured diagnostic categories emitted by the
// compiler pipeline.
type Kind string

const (
	// InvalidDescriptionFile marks a description file that failed structural
	// parsing; the whole group produces no entries.
	InvalidDescriptionFile Kind = "InvalidDescriptionFile"
	// UnresolvedNamespace marks a group whose namespace could not be resolved
	// or derived.
	UnresolvedNamespace Kind = "UnresolvedNamespace"
	// UnresolvedResourceName marks a group whose resource name could not be
	// resolved or derived; accessor generation is suppressed for the group.
	UnresolvedResourceName Kind = "UnresolvedResourceName"
	// InconsistentProperty marks a per-file option that resolved to different
	// values across files of the same group.
	InconsistentProperty Kind = "InconsistentProperty"
)

// Diagnostic is a structured warning produced by one stage of the pipeline.
// Diagnostics never halt processing of other groups.
type Diagnostic struct {
	// Kind is the diagnostic category.
	Kind Kind
	// Path locates the offending file (or the group's first file when the
	// problem concerns the group as a whole).
	Path string
	// Property names the conflicting option for InconsistentProperty.
	Property string
}

// InvalidFile reports a description file that could not be read or parsed.
func InvalidFile(path string) Diagnostic {
	return Diagnostic{Kind: InvalidDescriptionFile, Path: path}
}

// NoNamespace reports a group without a resolvable namespace.
func NoNamespace(path string) Diagnostic {
	return Diagnostic{Kind: UnresolvedNamespace, Path: path}
}

// NoResourceName reports a group without a resolvable resource name.
func NoResourceName(path string) Diagnostic {
	return Diagnostic{Kind: UnresolvedResourceName, Path: path}
}

// Inconsistent reports an option with conflicting values inside a group.
func Inconsistent(property, path string) Diagnostic {
	return Diagnostic{Kind: InconsistentProperty, Path: path, Property: property}
}

// Message renders the human-readable diagnostic text.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case InvalidDescriptionFile:
		return fmt.Sprintf("resource description file %q could not be parsed", d.Path)
	case UnresolvedNamespace:
		return fmt.Sprintf("no namespace could be resolved for %q", d.Path)
	case UnresolvedResourceName:
		return fmt.Sprintf("no resource name could be resolved for %q; accessors were not generated", d.Path)
	case InconsistentProperty:
		return fmt.Sprintf("option %q has inconsistent values across the resource group (offending file %q)", d.Property, d.Path)
	default:
		return fmt.Sprintf("unknown diagnostic for %q", d.Path)
	}
}
