// Package check validates startup preconditions before any scanning starts.
package check

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Sentinel errors returned by CheckRoot. Both are fatal to the run.
var (
	ErrRootNotFound = errors.New("root directory does not exist")
	ErrRootNotDir   = errors.New("root is not a directory")
)

// CheckRoot verifies that root exists on fsys and is a directory. Other stat
// failures (permission denied on a parent, I/O errors) are wrapped as-is.
func CheckRoot(fsys afero.Fs, root string) error {
	fi, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}
	return nil
}
