package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"trailviewer/internal/source"
	"trailviewer/internal/trail"
)

var (
	ErrNoFiles    = errors.New("no gpx files uploaded")
	ErrNotGPX     = errors.New("only .gpx files are accepted")
	ErrOutsideSet = errors.New("trail is not part of this collection")
)

type Service struct {
	src     source.Source
	pattern string
	cache   *source.Cache
}

func NewService(src source.Source, pattern string, cache *source.Cache) *Service {
	return &Service{src: src, pattern: pattern, cache: cache}
}

// Trails loads every trail in the collection. The first failure aborts.
func (s *Service) Trails(ctx context.Context) ([]trail.Trail, error) {
	names, err := s.src.List(ctx, s.pattern)
	if err != nil {
		return nil, err
	}

	trails := make([]trail.Trail, 0, len(names))
	for _, name := range names {
		t, err := s.load(ctx, name)
		if err != nil {
			return nil, err
		}
		trails = append(trails, t)
	}
	return trails, nil
}

// Load returns one trail of the collection by its file name.
func (s *Service) Load(ctx context.Context, name string) (trail.Trail, error) {
	ok, err := path.Match(strings.TrimPrefix(s.pattern, "/"), strings.TrimPrefix(name, "/"))
	if err != nil {
		return trail.Trail{}, err
	}
	if !ok {
		return trail.Trail{}, fmt.Errorf("%w: %s", ErrOutsideSet, name)
	}
	return s.load(ctx, name)
}

func (s *Service) load(ctx context.Context, name string) (trail.Trail, error) {
	if t, ok := s.cache.Get(ctx, s.src.Name(), name); ok {
		return t, nil
	}

	data, err := source.ReadAll(ctx, s.src, name)
	if err != nil {
		return trail.Trail{}, err
	}
	t, err := trail.Parse(name, data)
	if err != nil {
		return trail.Trail{}, err
	}
	s.cache.Put(ctx, s.src.Name(), name, t)
	return t, nil
}

// ParseUploads parses uploaded files in order, named after the upload.
func ParseUploads(files []*multipart.FileHeader) ([]trail.Trail, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	trails := make([]trail.Trail, 0, len(files))
	for _, fh := range files {
		if !strings.EqualFold(path.Ext(fh.Filename), ".gpx") {
			return nil, fmt.Errorf("%w: %s", ErrNotGPX, fh.Filename)
		}
		t, err := parseUpload(fh)
		if err != nil {
			return nil, err
		}
		trails = append(trails, t)
	}
	return trails, nil
}

func parseUpload(fh *multipart.FileHeader) (trail.Trail, error) {
	f, err := fh.Open()
	if err != nil {
		return trail.Trail{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return trail.Trail{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return trail.Parse(fh.Filename, data)
}

func Summaries(trails []trail.Trail) []trail.Summary {
	out := make([]trail.Summary, 0, len(trails))
	for _, t := range trails {
		out = append(out, t.Summary())
	}
	return out
}
