package static

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir serves files from a local directory root.
type Dir struct {
	root string
}

// NewDir creates a directory source rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open reads the named file from the directory. Directories and missing
// files both report ErrNotFound.
func (d *Dir) Open(_ context.Context, name string) ([]byte, error) {
	full := filepath.Join(d.root, filepath.FromSlash(name))

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}
	return os.ReadFile(full)
}
