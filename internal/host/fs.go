// Package host adapts a directory tree on disk to the compiler's collaborator
// surface: description files discovered by walking the tree, options sourced
// from dotenv-format files, artifacts written under an output directory, and
// diagnostics forwarded to the log.
package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"resxgen/internal/compiler"
	"resxgen/internal/diag"
	"resxgen/internal/resolve"
)

// GlobalOptionsFile is the dotenv-format file, resolved against the input
// root, that supplies global options (RootNamespace=App, ProjectDir=...).
const GlobalOptionsFile = "resxgen.options"

// sidecarSuffix names the optional per-file options file: a description file
// at "a/Strings.resx" reads its options from "a/Strings.resx.options".
const sidecarSuffix = ".options"

// descriptionExt is the only input extension the walker picks up.
const descriptionExt = ".resx"

// FS is the filesystem host. Option lookups are cached and safe for
// concurrent use by parallel group compilation.
type FS struct {
	root   string
	outDir string
	global map[string]string

	mu      sync.RWMutex
	sidecar map[string]map[string]string
}

// NewFS creates a filesystem host rooted at root, writing artifacts under
// outDir. Global options come from the root's options file when present;
// ProjectDir defaults to the root itself.
func NewFS(root, outDir string) (*FS, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve input root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat input root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input root is not a directory: %s", root)
	}

	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	global, err := readOptions(filepath.Join(root, GlobalOptionsFile))
	if err != nil {
		return nil, fmt.Errorf("read global options: %w", err)
	}
	if _, ok := global[resolve.OptProjectDir]; !ok {
		global[resolve.OptProjectDir] = root
	}

	return &FS{
		root:    root,
		outDir:  outDir,
		global:  global,
		sidecar: make(map[string]map[string]string),
	}, nil
}

// Inputs discovers every description file under the root, sorted by path,
// with lazily-read content. Paths are given relative to the root, which is
// also the default project directory, so group keys and artifact names stay
// project-relative.
func (h *FS) Inputs() ([]compiler.File, error) {
	var files []compiler.File
	err := filepath.Walk(h.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), descriptionExt) {
			return nil
		}
		rel, err := filepath.Rel(h.root, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		abs := path
		files = append(files, compiler.File{
			Path: filepath.ToSlash(rel),
			Content: func() (string, error) {
				data, err := os.ReadFile(abs)
				if err != nil {
					return "", fmt.Errorf("read description file: %w", err)
				}
				return string(data), nil
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input root: %w", err)
	}

	log.Info().Int("count", len(files)).Str("root", h.root).Msg("Discovered description files")
	return files, nil
}

// File implements resolve.Lookup from the description file's sidecar options.
func (h *FS) File(path, key string) (string, bool) {
	h.mu.RLock()
	opts, ok := h.sidecar[path]
	h.mu.RUnlock()

	if !ok {
		loaded, err := readOptions(filepath.Join(h.root, filepath.FromSlash(path)) + sidecarSuffix)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Sidecar options unreadable")
			loaded = map[string]string{}
		}
		h.mu.Lock()
		h.sidecar[path] = loaded
		h.mu.Unlock()
		opts = loaded
	}

	v, ok := opts[key]
	return v, ok
}

// Global implements resolve.Lookup from the root options file.
func (h *FS) Global(key string) (string, bool) {
	v, ok := h.global[key]
	return v, ok
}

// Emit writes one artifact under the output directory.
func (h *FS) Emit(name, text string) {
	path := filepath.Join(h.outDir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		log.Error().Err(err).Str("artifact", path).Msg("Write artifact")
		return
	}
	log.Info().Str("artifact", path).Msg("Artifact written")
}

// Report logs one diagnostic.
func (h *FS) Report(d diag.Diagnostic) {
	log.Warn().
		Str("kind", string(d.Kind)).
		Str("file", d.Path).
		Str("property", d.Property).
		Msg(d.Message())
}

// readOptions loads a dotenv-format options file; a missing file is an empty
// option set.
func readOptions(path string) (map[string]string, error) {
	opts, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return opts, nil
}
