// Package fileaccess is the filesystem collaborator of the settings store.
// It reads and writes the line oriented receiver files on top of an
// afero.Fs so callers can swap the OS filesystem for an in-memory one.
package fileaccess

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/errors"
)

// Compile-time interface check.
var _ FileAccess = (*FS)(nil)

// FileAccess is the set of file operations the settings store depends on.
type FileAccess interface {
	Exists(path string) bool
	DirectoryExists(path string) bool
	CreateDirectory(path string) error
	ReadLines(path string) ([]string, error)
	ReadText(path string) (string, error)
	WriteLines(path string, lines []string) error
	WriteText(path, text string) error
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	List(dir string) ([]string, error)
	Delete(path string) error
}

// FS implements FileAccess over an afero.Fs.
type FS struct {
	fs afero.Fs
}

// New returns a FileAccess backed by fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FS{fs: fs}
}

// OS returns a FileAccess on the real filesystem.
func OS() *FS {
	return New(afero.NewOsFs())
}

// Memory returns a FileAccess on a fresh in-memory filesystem.
func Memory() *FS {
	return New(afero.NewMemMapFs())
}

// Fs returns the underlying afero filesystem.
func (f *FS) Fs() afero.Fs {
	return f.fs
}

// Exists reports whether path names a regular file.
func (f *FS) Exists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// DirectoryExists reports whether path names a directory.
func (f *FS) DirectoryExists(path string) bool {
	ok, err := afero.DirExists(f.fs, path)
	return err == nil && ok
}

// CreateDirectory creates path and any missing parents.
func (f *FS) CreateDirectory(path string) error {
	return errors.WrapIO("create", path, f.fs.MkdirAll(path, constants.DirPermissions))
}

// ReadText returns the whole content of path.
func (f *FS) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// ReadLines returns the lines of path without line terminators. Both LF
// and CRLF endings are accepted; a final newline does not produce an
// empty trailing line.
func (f *FS) ReadLines(path string) ([]string, error) {
	text, err := f.ReadText(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// WriteText replaces the content of path, creating parent directories.
func (f *FS) WriteText(path, text string) error {
	if err := f.CreateDirectory(filepath.Dir(path)); err != nil {
		return err
	}
	return errors.WrapIO("write", path, afero.WriteFile(f.fs, path, []byte(text), constants.FilePermissions))
}

// WriteLines writes lines joined by LF, with a trailing newline.
func (f *FS) WriteLines(path string, lines []string) error {
	return f.WriteText(path, JoinLines(lines))
}

// Open opens path for reading.
func (f *FS) Open(path string) (io.ReadCloser, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return file, nil
}

// Create truncates or creates path for writing, creating parent
// directories.
func (f *FS) Create(path string) (io.WriteCloser, error) {
	if err := f.CreateDirectory(filepath.Dir(path)); err != nil {
		return nil, err
	}
	file, err := f.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, errors.WrapIO("create", path, err)
	}
	return file, nil
}

// List returns the names of the regular files in dir, sorted.
func (f *FS) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes path. Deleting a missing file is not an error.
func (f *FS) Delete(path string) error {
	err := f.fs.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return errors.WrapIO("delete", path, err)
}

// SplitLines splits text into lines, dropping CR before LF and the empty
// line after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines joins lines with LF and terminates the last one.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
