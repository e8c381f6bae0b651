// Where: internal/materialize/materializer.go
// What: Write a declarative DirectoryTree to a root directory.
// Why: One generic writer for every generated file, with the filesystem injected for tests.
package materialize

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/openmfp/create-portal/internal/domain/portal"
	"github.com/openmfp/create-portal/internal/infra/fileops"
)

// Materializer turns a DirectoryTree into files under a root directory.
type Materializer struct {
	fs        afero.Fs
	templates fs.FS
	logger    *log.Logger
	dryRun    bool
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(logger *log.Logger) Option {
	return func(m *Materializer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDryRun resolves every file without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(m *Materializer) {
		m.dryRun = enabled
	}
}

// New creates a Materializer writing to fsys and reading templates from templates.
func New(fsys afero.Fs, templates fs.FS, opts ...Option) *Materializer {
	m := &Materializer{
		fs:        fsys,
		templates: templates,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Result describes a completed materialization.
type Result struct {
	Root   string
	Files  []string
	DryRun bool
}

// EnsureRootAbsent fails with *AlreadyExistsError when root exists.
// The check is advisory; a concurrent creator can still win the race.
func (m *Materializer) EnsureRootAbsent(root string) error {
	exists, err := fileops.PathExists(m.fs, root)
	if err != nil {
		return &IOError{Op: "stat", Path: root, Err: err}
	}
	if exists {
		return &AlreadyExistsError{Path: root}
	}
	return nil
}

// WriteFile creates missing parent directories and writes content in full.
func (m *Materializer) WriteFile(path, content string) error {
	if err := fileops.WriteFile(m.fs, path, content); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Materialize writes every file of tree below root.
// Templates are resolved before the first write, so a missing template leaves no trace.
// A write failure aborts immediately and files already written are kept.
func (m *Materializer) Materialize(tree portal.DirectoryTree, root string) (Result, error) {
	if m.fs == nil {
		return Result{}, errFilesystemNil
	}
	if m.templates == nil {
		return Result{}, errTemplatesNil
	}
	if root == "" {
		return Result{}, errRootRequired
	}
	if err := tree.Validate(); err != nil {
		return Result{}, err
	}
	if err := m.EnsureRootAbsent(root); err != nil {
		return Result{}, err
	}

	contents := make([]string, len(tree.Files))
	for i, spec := range tree.Files {
		content, err := m.resolve(spec)
		if err != nil {
			return Result{}, err
		}
		contents[i] = content
	}

	result := Result{Root: root, DryRun: m.dryRun, Files: make([]string, 0, len(tree.Files))}
	if m.dryRun {
		for _, spec := range tree.Files {
			m.logger.Debug("would write file", "path", spec.RelPath())
			result.Files = append(result.Files, spec.RelPath())
		}
		return result, nil
	}

	if err := fileops.EnsureDir(m.fs, root); err != nil {
		return Result{}, &IOError{Op: "create directory", Path: root, Err: err}
	}
	for i, spec := range tree.Files {
		target := filepath.Join(append([]string{root}, spec.Path...)...)
		if err := m.WriteFile(target, contents[i]); err != nil {
			return result, err
		}
		m.logger.Debug("wrote file", "path", spec.RelPath(), "bytes", len(contents[i]))
		result.Files = append(result.Files, spec.RelPath())
	}
	return result, nil
}

func (m *Materializer) resolve(spec portal.FileSpec) (string, error) {
	switch spec.Content.Kind {
	case portal.ContentLiteral:
		return spec.Content.Text, nil
	case portal.ContentTemplate:
		data, err := fs.ReadFile(m.templates, spec.Content.Template)
		if err != nil {
			return "", &IOError{Op: "read template", Path: spec.Content.Template, Err: err}
		}
		return Substitute(string(data), spec.Content.Mapping), nil
	default:
		return "", &IOError{Op: "resolve", Path: spec.RelPath(), Err: fs.ErrInvalid}
	}
}
