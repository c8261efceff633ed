// Package compiler drives the full compilation pass: it partitions the input
// snapshot into culture groups, resolves each group's configuration, parses
// and merges entries, and hands rendered artifacts and diagnostics back to
// the host. The pass is a pure function of its inputs; groups are processed
// independently and may run in parallel.
package compiler

import (
	"context"

	"github.com/rs/zerolog/log"

	"resxgen/internal/diag"
	"resxgen/internal/emit"
	"resxgen/internal/grouping"
	"resxgen/internal/resolve"
	"resxgen/internal/resx"
	"resxgen/internal/worker"
)

// File is one input description file. Content is read lazily, at most once
// per pass, when the owning group is parsed.
type File struct {
	Path    string
	Content func() (string, error)
}

// Host is the collaborator surface supplied by the build environment: a
// read-only configuration snapshot plus the artifact and diagnostic sinks.
type Host interface {
	resolve.Lookup

	// Emit receives the rendered artifact text for one group.
	Emit(name, text string)
	// Report receives one structured diagnostic. Diagnostics accompany
	// partial output; they never replace it.
	Report(d diag.Diagnostic)
}

// Compiler runs compilation passes against a fixed host.
type Compiler struct {
	host    Host
	workers int
}

// New creates a compiler processing up to workers groups concurrently.
func New(host Host, workers int) *Compiler {
	return &Compiler{host: host, workers: workers}
}

// groupResult is the buffered outcome for one group. Emission happens after
// all groups finish, in sorted group order, so output is deterministic
// regardless of worker scheduling.
type groupResult struct {
	name  string
	text  string
	diags []diag.Diagnostic
}

// Run compiles the input snapshot. A failure inside one group surfaces as
// diagnostics on that group alone; only cancellation stops the pass, and a
// cancelled pass emits nothing for groups it did not finish.
func (c *Compiler) Run(ctx context.Context, inputs []File) error {
	byPath := make(map[string]File, len(inputs))
	paths := make([]string, 0, len(inputs))
	for _, f := range inputs {
		if _, ok := byPath[f.Path]; ok {
			continue
		}
		byPath[f.Path] = f
		paths = append(paths, f.Path)
	}

	groups := grouping.Partition(paths)
	log.Info().Int("files", len(paths)).Int("groups", len(groups)).Msg("Compiling resource groups")

	pool := worker.NewPool(c.workers, func(ctx context.Context, g grouping.Group) (*groupResult, error) {
		return c.compileGroup(ctx, g, byPath)
	})
	results := pool.Execute(ctx, groups)

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, d := range r.Output.diags {
			c.host.Report(d)
		}
		c.host.Emit(r.Output.name, r.Output.text)
	}
	return ctx.Err()
}

func (c *Compiler) compileGroup(ctx context.Context, g grouping.Group, byPath map[string]File) (*groupResult, error) {
	res := &groupResult{name: emit.ArtifactName(g.Key)}
	report := func(d diag.Diagnostic) { res.diags = append(res.diags, d) }

	cfg := resolve.Resolve(c.host, g.Key, g.Paths, report)

	entries, err := c.parseGroup(ctx, g, byPath, report)
	if err != nil {
		return nil, err
	}
	if cfg.ResourceName == "" {
		entries = nil
	}

	files := make([]emit.File, 0, len(g.Paths))
	for _, p := range g.Paths {
		files = append(files, emit.File{
			Path:    p,
			Culture: grouping.CanonicalCulture(grouping.Culture(p)),
		})
	}
	res.text = emit.Artifact(g.Key, files, cfg, entries)

	log.Debug().
		Str("group", g.Key).
		Int("files", len(g.Paths)).
		Int("entries", len(entries)).
		Int("diagnostics", len(res.diags)).
		Msg("Compiled group")
	return res, nil
}

// parseGroup parses every file of the group in path order and merges the
// entries. A failed read or parse rejects the whole group: entries from
// files parsed earlier are discarded and the group yields nil entries.
// Cancellation is checked once, before any content is read.
func (c *Compiler) parseGroup(ctx context.Context, g grouping.Group, byPath map[string]File, report func(diag.Diagnostic)) ([]resx.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lists := make([][]resx.Entry, 0, len(g.Paths))
	for _, p := range g.Paths {
		content, err := byPath[p].Content()
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("Description file unreadable")
			report(diag.InvalidFile(p))
			return nil, nil
		}
		entries, err := resx.ParseDocument(content)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("Description file rejected")
			report(diag.InvalidFile(p))
			return nil, nil
		}
		lists = append(lists, entries)
	}
	return resx.Merge(lists...), nil
}
