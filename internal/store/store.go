package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	ErrInvalidName = errors.New("invalid resource name")
)

// Store hands out response bodies by name.
type Store interface {
	Load(name string) ([]byte, error)
}

type store struct {
	fsys fs.FS
}

// New returns a Store rooted at the directory root.
func New(root string) Store {
	return NewFS(os.DirFS(root))
}

func NewFS(fsys fs.FS) Store {
	return &store{fsys: fsys}
}

func (s *store) Load(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	body, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return body, nil
}
