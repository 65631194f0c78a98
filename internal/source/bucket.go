package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type objectStore interface {
	names(ctx context.Context, prefix string) ([]string, error)
	reader(ctx context.Context, name string) (io.ReadCloser, error)
}

// Bucket reads trails from a Google Cloud Storage bucket.
type Bucket struct {
	Bucket string
	client *storage.Client
	store  objectStore
}

func NewBucket(client *storage.Client, bucket string) *Bucket {
	return &Bucket{Bucket: bucket, client: client, store: &gcsStore{bucket: client.Bucket(bucket)}}
}

// Close releases the storage client.
func (b *Bucket) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

func (b *Bucket) Name() string {
	return "gcs:" + b.Bucket
}

func (b *Bucket) List(ctx context.Context, pattern string) ([]string, error) {
	prefix := globDir(pattern)
	if prefix != "" {
		prefix += "/"
	}
	names, err := b.store.names(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list gs://%s/%s: %w", b.Bucket, prefix, err)
	}
	return filterMatches(pattern, names)
}

func (b *Bucket) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := b.store.reader(ctx, strings.TrimPrefix(name, "/"))
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: gs://%s/%s", ErrNotFound, b.Bucket, name)
	}
	return rc, err
}

type gcsStore struct {
	bucket *storage.BucketHandle
}

func (s *gcsStore) names(ctx context.Context, prefix string) ([]string, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	var names []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}
}

func (s *gcsStore) reader(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.bucket.Object(name).NewReader(ctx)
}
