package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
)

// Source discovers and opens GPX files in a trail collection.
type Source interface {
	Name() string
	// List returns the sorted names matching a path.Match pattern.
	List(ctx context.Context, pattern string) ([]string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

var ErrNotFound = errors.New("trail file not found")

// ReadAll opens name and reads it to the end.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// globDir is the literal directory part of pattern, which remote listings start from.
func globDir(pattern string) string {
	dir := path.Dir(strings.TrimPrefix(pattern, "/"))
	if dir == "." {
		return ""
	}
	return dir
}

func filterMatches(pattern string, names []string) ([]string, error) {
	pattern = strings.TrimPrefix(pattern, "/")
	var out []string
	for _, name := range names {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}
