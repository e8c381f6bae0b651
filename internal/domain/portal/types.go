// Where: internal/domain/portal/types.go
// What: Project request and declarative file tree types.
// Why: Describe what to generate independently from how it reaches the disk.
package portal

import (
	"fmt"
	"path"
	"strings"
)

// ProjectRequest is the validated user input for one generation run.
type ProjectRequest struct {
	Name string
}

// NewProjectRequest trims and validates a project name.
// The name becomes a single directory, so separators and dot segments are rejected.
func NewProjectRequest(name string) (ProjectRequest, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ProjectRequest{}, ErrProjectNameRequired
	}
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) {
		return ProjectRequest{}, fmt.Errorf("%w: %q", ErrInvalidProjectName, trimmed)
	}
	return ProjectRequest{Name: trimmed}, nil
}

// ContentKind distinguishes literal file bodies from template references.
type ContentKind int

const (
	ContentLiteral ContentKind = iota
	ContentTemplate
)

func (k ContentKind) String() string {
	switch k {
	case ContentLiteral:
		return "literal"
	case ContentTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// Content is the body of a generated file.
// Literal content is written as-is; template content is read from the template
// source and passed through one placeholder substitution using Mapping.
type Content struct {
	Kind     ContentKind
	Text     string
	Template string
	Mapping  map[string]string
}

// Literal returns content written verbatim.
func Literal(text string) Content {
	return Content{Kind: ContentLiteral, Text: text}
}

// Template returns content resolved from ref with the given placeholder mapping.
func Template(ref string, mapping map[string]string) Content {
	return Content{Kind: ContentTemplate, Template: ref, Mapping: mapping}
}

// FileSpec is one file in the tree, addressed by path segments relative to the project root.
type FileSpec struct {
	Path    []string
	Content Content
}

// RelPath returns the slash-separated relative path.
func (f FileSpec) RelPath() string {
	return path.Join(f.Path...)
}

// DirectoryTree is the ordered set of files for one invocation.
// Parent directories are implied by the file paths.
type DirectoryTree struct {
	Files []FileSpec
}

// Paths returns relative paths in table order.
func (t DirectoryTree) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for _, file := range t.Files {
		paths = append(paths, file.RelPath())
	}
	return paths
}

// Validate checks every path is relative, free of dot segments, and unique.
func (t DirectoryTree) Validate() error {
	seen := make(map[string]struct{}, len(t.Files))
	for _, file := range t.Files {
		if len(file.Path) == 0 {
			return ErrEmptyPath
		}
		for _, segment := range file.Path {
			if err := validateSegment(segment); err != nil {
				return fmt.Errorf("%w: %q", err, file.RelPath())
			}
		}
		rel := file.RelPath()
		if _, ok := seen[rel]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePath, rel)
		}
		seen[rel] = struct{}{}
	}
	return nil
}

func validateSegment(segment string) error {
	switch {
	case segment == "":
		return ErrEmptyPath
	case segment == "." || segment == "..":
		return ErrInvalidPath
	case strings.ContainsAny(segment, `/\`):
		return ErrInvalidPath
	}
	return nil
}
