package source

import (
	"context"
	"errors"
	"fmt"

	"trailviewer/internal/config"

	"cloud.google.com/go/storage"
)

// New builds the source selected by TRAILS_SOURCE. Sources that hold
// connections implement io.Closer.
func New(ctx context.Context, cfg config.Config) (Source, error) {
	switch cfg.TrailsSource {
	case "", "github":
		if cfg.GitHubOrg == "" || cfg.GitHubRepo == "" {
			return nil, errors.New("github source needs GITHUB_ORG and GITHUB_REPO")
		}
		return NewGitHub(cfg.GitHubOrg, cfg.GitHubRepo, cfg.GitHubRef, cfg.GitHubToken, cfg.GitHubRPS), nil
	case "local":
		return NewLocal(cfg.TrailsDir), nil
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, errors.New("gcs source needs GCS_BUCKET")
		}
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		return NewBucket(client, cfg.GCSBucket), nil
	default:
		return nil, fmt.Errorf("unknown trail source %q", cfg.TrailsSource)
	}
}
