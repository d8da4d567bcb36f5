package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// Classified removal failures. Returned errors wrap one of these, so callers
// can use errors.Is.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("path is a directory")
	ErrPermission  = errors.New("permission denied")
)

// Remover deletes single files. It never removes directories.
type Remover struct {
	d     Deleter
	lstat func(path string) (os.FileInfo, error)
}

// NewRemover returns a Remover operating on fsys.
func NewRemover(fsys afero.Fs) *Remover {
	return &Remover{d: fsys, lstat: lstatFunc(fsys)}
}

// Remove deletes the file at path and returns its size before removal.
// Symlinks are removed themselves, never their targets.
func (r *Remover) Remove(path string) (int64, error) {
	fi, err := r.lstat(path)
	if err != nil {
		return 0, classify(path, err)
	}
	if fi.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if err := r.d.Remove(path); err != nil {
		return 0, classify(path, err)
	}
	return fi.Size(), nil
}

// lstatFunc uses Lstat where the filesystem supports it so a dangling
// symlink is still seen as an existing entry.
func lstatFunc(fsys afero.Fs) func(string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		return func(path string) (os.FileInfo, error) {
			fi, _, err := l.LstatIfPossible(path)
			return fi, err
		}
	}
	return fsys.Stat
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermission, path, err)
	default:
		return fmt.Errorf("remove %s: %w", path, err)
	}
}
