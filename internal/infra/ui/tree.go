// Where: internal/infra/ui/tree.go
// What: Directory tree printer for generated projects.
// Why: Show the user what was written, reading back from the same filesystem the files went to.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/openmfp/create-portal/internal/infra/fileops"
)

const (
	branchGlyph = "├── "
	lastGlyph   = "└── "
	pipeGlyph   = "│   "
	spaceGlyph  = "    "
)

var dirStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// TreeOptions controls tree rendering.
type TreeOptions struct {
	// Styled colours directory names. Leave false when output is not a terminal.
	Styled bool
}

// RenderTree writes the listing of root below a "<name>/" heading.
// Dot-entries and node_modules are hidden; directories come first.
func RenderTree(out io.Writer, fsys afero.Fs, root, name string, opts TreeOptions) error {
	if _, err := fmt.Fprintln(out, formatDir(name, opts)); err != nil {
		return err
	}
	return renderLevel(out, fsys, root, "", opts)
}

func renderLevel(out io.Writer, fsys afero.Fs, dir, prefix string, opts TreeOptions) error {
	entries, err := fileops.ListDir(fsys, dir)
	if err != nil {
		return err
	}
	for idx, entry := range entries {
		last := idx == len(entries)-1
		glyph, childPrefix := branchGlyph, prefix+pipeGlyph
		if last {
			glyph, childPrefix = lastGlyph, prefix+spaceGlyph
		}

		label := entry.Name
		if entry.IsDir {
			label = formatDir(entry.Name, opts)
		}
		if _, err := fmt.Fprintf(out, "%s%s%s\n", prefix, glyph, label); err != nil {
			return err
		}
		if entry.IsDir {
			if err := renderLevel(out, fsys, entry.Path, childPrefix, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatDir(name string, opts TreeOptions) string {
	label := name + "/"
	if opts.Styled {
		return dirStyle.Render(label)
	}
	return label
}
