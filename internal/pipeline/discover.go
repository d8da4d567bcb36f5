package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/casedup/internal/config"
	"github.com/spf13/afero"
)

// WarnFunc receives traversal errors that were skipped over.
type WarnFunc func(path string, err error)

// Scan walks root on fsys and groups every non-directory entry by its
// normalized key. Entries are visited in lexical order within each
// directory. Hidden files, symlinks and special files are all included.
//
// Traversal errors never abort the walk: each is passed to warn (if non-nil)
// and counted in the second return value. The returned error is reserved for
// failures of the walk itself.
func Scan(fsys afero.Fs, root string, mode config.KeyMode, warn WarnFunc) (*Groups, int, error) {
	groups := NewGroups()
	skipped := 0
	err := afero.Walk(fsys, walkRoot(fsys, root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			skipped++
			if warn != nil {
				warn(path, err)
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		groups.Add(NormalizeKey(path, mode), path)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return groups, skipped, nil
}

// walkRoot returns the path to hand to afero.Walk. Walk lstats its root, so a
// root that is a symlink to a directory would be reported as a single file.
// A trailing separator makes the lookup follow the link while every reported
// path keeps the root as given.
func walkRoot(fsys afero.Fs, root string) string {
	l, ok := fsys.(afero.Lstater)
	if !ok {
		return root
	}
	fi, _, err := l.LstatIfPossible(root)
	if err != nil || fi.Mode()&os.ModeSymlink == 0 {
		return root
	}
	if target, err := fsys.Stat(root); err != nil || !target.IsDir() {
		return root
	}
	return root + string(filepath.Separator)
}
