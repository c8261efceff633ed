package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resxgen/internal/diag"
)

type fakeLookup struct {
	file   map[string]map[string]string
	global map[string]string
}

func (f fakeLookup) File(path, key string) (string, bool) {
	v, ok := f.file[path][key]
	return v, ok
}

func (f fakeLookup) Global(key string) (string, bool) {
	v, ok := f.global[key]
	return v, ok
}

func collect(diags *[]diag.Diagnostic) func(diag.Diagnostic) {
	return func(d diag.Diagnostic) { *diags = append(*diags, d) }
}

func TestResolveDerivesNamesFromProjectLayout(t *testing.T) {
	lookup := fakeLookup{global: map[string]string{
		OptRootNamespace: "App",
		OptProjectDir:    "/proj",
	}}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/Sub/Strings",
		[]string{"/proj/Sub/Strings.resx", "/proj/Sub/Strings.fr.resx"}, collect(&diags))

	assert.Empty(t, diags)
	assert.Equal(t, "App.Sub", cfg.Namespace)
	assert.Equal(t, "App.Sub.Strings", cfg.ResourceName)
	assert.Equal(t, "Strings", cfg.ClassName)
	assert.False(t, cfg.UseInstanceMembers)
}

func TestResolveRelativeKeyAgainstProjectDir(t *testing.T) {
	lookup := fakeLookup{global: map[string]string{
		OptRootNamespace: "App",
		OptProjectDir:    "/proj",
	}}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "Sub/Strings",
		[]string{"Sub/Strings.resx", "Sub/Strings.fr.resx"}, collect(&diags))

	assert.Empty(t, diags)
	assert.Equal(t, "App.Sub", cfg.Namespace)
	assert.Equal(t, "App.Sub.Strings", cfg.ResourceName)
}

func TestResolveGroupAtProjectRoot(t *testing.T) {
	lookup := fakeLookup{global: map[string]string{
		OptRootNamespace: "App",
		OptProjectDir:    "/proj/",
	}}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/Strings", []string{"/proj/Strings.resx"}, collect(&diags))

	assert.Empty(t, diags)
	assert.Equal(t, "App", cfg.Namespace)
	assert.Equal(t, "App.Strings", cfg.ResourceName)
}

func TestResolvePerFileOverridesWin(t *testing.T) {
	lookup := fakeLookup{
		file: map[string]map[string]string{
			"/proj/S.resx": {
				OptNamespace:    "Custom.Ns",
				OptResourceName: "Custom.Rn",
				OptClassName:    "CustomClass",
			},
		},
		global: map[string]string{
			OptRootNamespace: "App",
			OptProjectDir:    "/proj",
		},
	}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))

	assert.Empty(t, diags)
	assert.Equal(t, "Custom.Ns", cfg.Namespace)
	assert.Equal(t, "Custom.Rn", cfg.ResourceName)
	assert.Equal(t, "CustomClass", cfg.ClassName)
}

func TestResolveConflictEmitsSingleDiagnosticAndFallsBack(t *testing.T) {
	lookup := fakeLookup{
		file: map[string]map[string]string{
			"/proj/S.en.resx": {OptClassName: "Foo"},
			"/proj/S.fr.resx": {OptClassName: "Bar"},
		},
		global: map[string]string{
			OptRootNamespace: "App",
			OptProjectDir:    "/proj",
		},
	}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S",
		[]string{"/proj/S.en.resx", "/proj/S.fr.resx", "/proj/S.resx"}, collect(&diags))

	require.Len(t, diags, 1)
	assert.Equal(t, diag.InconsistentProperty, diags[0].Kind)
	assert.Equal(t, OptClassName, diags[0].Property)
	assert.Equal(t, "/proj/S.fr.resx", diags[0].Path)
	assert.Equal(t, "S", cfg.ClassName, "conflicting option falls back to the derived default")
}

func TestResolveConsistentValuesAcrossFiles(t *testing.T) {
	lookup := fakeLookup{
		file: map[string]map[string]string{
			"/proj/S.resx":    {OptClassName: "Same"},
			"/proj/S.fr.resx": {OptClassName: "Same"},
		},
		global: map[string]string{
			OptRootNamespace: "App",
			OptProjectDir:    "/proj",
		},
	}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx", "/proj/S.fr.resx"}, collect(&diags))

	assert.Empty(t, diags)
	assert.Equal(t, "Same", cfg.ClassName)
}

func TestResolvePerFileBeatsGlobal(t *testing.T) {
	lookup := fakeLookup{
		file: map[string]map[string]string{
			"/proj/S.resx": {OptRootNamespace: "PerFile"},
		},
		global: map[string]string{
			OptRootNamespace: "Global",
			OptProjectDir:    "/proj",
		},
	}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))

	assert.Equal(t, "PerFile", cfg.RootNamespace)
	assert.Equal(t, "PerFile.S", cfg.ResourceName)
}

func TestResolveUnresolvedNamesProduceDiagnostics(t *testing.T) {
	var diags []diag.Diagnostic

	cfg := Resolve(fakeLookup{}, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))

	assert.Equal(t, "", cfg.Namespace)
	assert.Equal(t, "", cfg.ResourceName)
	require.Len(t, diags, 2)
	assert.Equal(t, diag.UnresolvedNamespace, diags[0].Kind)
	assert.Equal(t, "/proj/S.resx", diags[0].Path)
	assert.Equal(t, diag.UnresolvedResourceName, diags[1].Kind)
}

func TestResolveKeyOutsideProjectDir(t *testing.T) {
	lookup := fakeLookup{global: map[string]string{
		OptRootNamespace: "App",
		OptProjectDir:    "/elsewhere",
	}}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))

	assert.Equal(t, "", cfg.Namespace)
	assert.Equal(t, "", cfg.ResourceName)
	assert.Len(t, diags, 2)
}

func TestResolveUseInstanceMembers(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "TRUE": true, "1": true,
		"false": false, "garbage": false, "": false,
	} {
		lookup := fakeLookup{
			file: map[string]map[string]string{
				"/proj/S.resx": {OptUseInstanceMembers: raw},
			},
			global: map[string]string{
				OptRootNamespace: "App",
				OptProjectDir:    "/proj",
			},
		}
		var diags []diag.Diagnostic
		cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))
		assert.Equal(t, want, cfg.UseInstanceMembers, "raw value %q", raw)
	}
}

func TestResolveTraceRecordsResolution(t *testing.T) {
	lookup := fakeLookup{global: map[string]string{
		OptRootNamespace: "App",
		OptProjectDir:    "/proj",
	}}
	var diags []diag.Diagnostic

	cfg := Resolve(lookup, "/proj/S", []string{"/proj/S.resx"}, collect(&diags))

	require.Len(t, cfg.Trace, 6)
	assert.Equal(t, OptRootNamespace, cfg.Trace[0].Option)
	assert.Equal(t, "App", cfg.Trace[0].Resolved)
	assert.Equal(t, []string{"global=App"}, cfg.Trace[0].Inputs)

	byOption := make(map[string]Resolution)
	for _, r := range cfg.Trace {
		byOption[r.Option] = r
	}
	assert.Equal(t, "App.S", byOption[OptResourceName].Resolved)
	assert.Equal(t, "App", byOption[OptNamespace].Resolved)
	assert.Equal(t, "S", byOption[OptClassName].Resolved)
	assert.Equal(t, "false", byOption[OptUseInstanceMembers].Resolved)
}
