package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Local serves trails from a directory on disk.
type Local struct {
	Root string
	fsys fs.FS
}

func NewLocal(root string) *Local {
	if root == "" {
		root = "."
	}
	return &Local{Root: root, fsys: os.DirFS(root)}
}

func (l *Local) Name() string {
	return "local:" + l.Root
}

func (l *Local) List(_ context.Context, pattern string) ([]string, error) {
	names, err := fs.Glob(l.fsys, strings.TrimPrefix(pattern, "/"))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := l.fsys.Open(strings.TrimPrefix(name, "/"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
