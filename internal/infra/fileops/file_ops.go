// Where: internal/infra/fileops/file_ops.go
// What: Shared filesystem operations over an injected afero.Fs.
// Why: Keep generation, config loading, and tree reporting on one swappable filesystem.
package fileops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

func EnsureDir(fsys afero.Fs, path string) error {
	return fsys.MkdirAll(path, dirPerm)
}

// WriteFile creates the parent directory if needed and writes the full content.
func WriteFile(fsys afero.Fs, path, content string) error {
	if err := EnsureDir(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, []byte(content), filePerm)
}

func ReadFile(fsys afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fsys, path)
}

func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists reports whether anything exists at path.
// Errors other than not-exist are returned so callers can tell "absent" from "unreadable".
func PathExists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Entry is one directory child returned by ListDir.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// ListDir returns the visible children of dir: directories first, then files,
// each group sorted by name. Dot entries and node_modules are skipped.
func ListDir(fsys afero.Fs, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" {
			continue
		}
		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: info.IsDir(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
