// Package resolve computes the per-group configuration from layered per-file
// and global option sources, with conflict detection.
package resolve

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"resxgen/internal/diag"
	"resxgen/internal/ident"
)

// Option names recognized per file. RootNamespace, ProjectDir and
// UseInstanceMembers additionally fall back to a global option of the same
// name; the remaining options are per-file only.
const (
	OptRootNamespace      = "RootNamespace"
	OptProjectDir         = "ProjectDir"
	OptNamespace          = "Namespace"
	OptResourceName       = "ResourceName"
	OptClassName          = "ClassName"
	OptUseInstanceMembers = "UseInstanceMembers"
)

// Lookup is the read-only configuration capability supplied by the host, a
// snapshot rather than a live reference into host state.
type Lookup interface {
	// File returns the per-file option value for the given path, if set.
	File(path, key string) (string, bool)
	// Global returns the global option value, if set.
	Global(key string) (string, bool)
}

// Resolution records how one option resolved, for the artifact header.
type Resolution struct {
	Option   string
	Inputs   []string // "path=value" per contributing source, "global=value" for fallback
	Resolved string   // final value, "" when unset
}

// Config is the resolved configuration for one group. Namespace and
// ResourceName are "" when they could not be resolved or derived.
type Config struct {
	RootNamespace      string
	ProjectDir         string
	Namespace          string
	ResourceName       string
	ClassName          string
	UseInstanceMembers bool

	// Trace records every option's inputs and resolved form, in a fixed
	// order, for the human-readable artifact header.
	Trace []Resolution
}

// Resolve computes the configuration for one group. Paths must already be in
// group (sorted) order. Unresolvable namespace or resource name produce
// diagnostics through report; the resource-name case additionally suppresses
// accessor generation downstream.
func Resolve(lookup Lookup, key string, paths []string, report func(diag.Diagnostic)) Config {
	var cfg Config
	var rootNS, projectDir, namespace, resourceName, className, instance Resolution

	cfg.RootNamespace, rootNS = option(lookup, OptRootNamespace, OptRootNamespace, paths, report)
	cfg.ProjectDir, projectDir = option(lookup, OptProjectDir, OptProjectDir, paths, report)
	cfg.Namespace, namespace = option(lookup, OptNamespace, "", paths, report)
	cfg.ResourceName, resourceName = option(lookup, OptResourceName, "", paths, report)
	cfg.ClassName, className = option(lookup, OptClassName, "", paths, report)

	raw, instance := option(lookup, OptUseInstanceMembers, OptUseInstanceMembers, paths, report)
	cfg.UseInstanceMembers = parseBool(raw)

	defaultResource, defaultNamespace := deriveNames(cfg.RootNamespace, cfg.ProjectDir, key)
	if cfg.ResourceName == "" {
		cfg.ResourceName = defaultResource
	}
	if cfg.Namespace == "" {
		cfg.Namespace = defaultNamespace
	}
	if cfg.ClassName == "" {
		base := filepath.Base(key)
		cfg.ClassName = ident.Sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if cfg.Namespace == "" {
		report(diag.NoNamespace(paths[0]))
	}
	if cfg.ResourceName == "" {
		report(diag.NoResourceName(paths[0]))
	}

	namespace.Resolved = cfg.Namespace
	resourceName.Resolved = cfg.ResourceName
	className.Resolved = cfg.ClassName
	instance.Resolved = strconv.FormatBool(cfg.UseInstanceMembers)
	cfg.Trace = []Resolution{rootNS, projectDir, namespace, resourceName, className, instance}

	log.Debug().
		Str("group", key).
		Str("namespace", cfg.Namespace).
		Str("resource_name", cfg.ResourceName).
		Str("class_name", cfg.ClassName).
		Msg("Resolved group configuration")

	return cfg
}

// option resolves one named option across the group's files. Two or more
// distinct per-file values are a conflict: exactly one diagnostic is emitted,
// naming the option and the first file that diverged, and the option resolves
// to unset before the global fallback is consulted.
func option(lookup Lookup, name, globalName string, paths []string, report func(diag.Diagnostic)) (string, Resolution) {
	res := Resolution{Option: name}

	var value string
	var found, conflict bool
	var conflictPath string
	for _, p := range paths {
		v, ok := lookup.File(p, name)
		if !ok {
			continue
		}
		res.Inputs = append(res.Inputs, p+"="+v)
		if !found {
			value, found = v, true
			continue
		}
		if v != value && !conflict {
			conflict = true
			conflictPath = p
		}
	}
	if conflict {
		report(diag.Inconsistent(name, conflictPath))
		value, found = "", false
	}

	if !found && globalName != "" {
		if v, ok := lookup.Global(globalName); ok && v != "" {
			res.Inputs = append(res.Inputs, "global="+v)
			value = v
		}
	}

	res.Resolved = value
	return value, res
}

// parseBool mirrors strconv semantics but treats any parse failure as false.
func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return v
}

// deriveNames computes the default resource name and namespace for a group
// key by path arithmetic against the project directory. Both are "" when the
// root namespace or project directory is unset, or when the key lies outside
// the project directory.
func deriveNames(rootNamespace, projectDir, key string) (resourceName, namespace string) {
	if rootNamespace == "" || projectDir == "" {
		return "", ""
	}

	absDir, err := filepath.Abs(projectDir)
	if err != nil {
		return "", ""
	}
	// Relative keys are host paths given relative to the project directory.
	absKey := filepath.Clean(key)
	if !filepath.IsAbs(absKey) {
		absKey = filepath.Join(absDir, absKey)
	}

	keyPath := filepath.ToSlash(absKey)
	dirPrefix := strings.TrimSuffix(filepath.ToSlash(absDir), "/") + "/"

	resourceName = relativeDotted(rootNamespace, dirPrefix, keyPath)
	namespace = strings.TrimSuffix(
		relativeDotted(rootNamespace, dirPrefix, path.Dir(keyPath)), ".")
	return resourceName, namespace
}

// relativeDotted maps a path under the project directory onto a dotted name
// rooted at the root namespace. The project directory itself maps to the
// root namespace; paths outside it map to "".
func relativeDotted(rootNamespace, dirPrefix, p string) string {
	if p+"/" == dirPrefix {
		return rootNamespace
	}
	if !strings.HasPrefix(p, dirPrefix) {
		return ""
	}
	return rootNamespace + "." + strings.ReplaceAll(p[len(dirPrefix):], "/", ".")
}
