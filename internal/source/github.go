package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultGitHubAPI = "https://api.github.com"
	defaultGitHubRaw = "https://raw.githubusercontent.com"
)

// GitHub reads trails from a repository through the contents API.
type GitHub struct {
	Org     string
	Repo    string
	Ref     string
	Token   string
	APIURL  string
	RawURL  string
	Client  *http.Client
	Limiter *rate.Limiter
}

func NewGitHub(org, repo, ref, token string, rps float64) *GitHub {
	if rps <= 0 {
		rps = 2
	}
	return &GitHub{
		Org:     org,
		Repo:    repo,
		Ref:     ref,
		Token:   token,
		APIURL:  defaultGitHubAPI,
		RawURL:  defaultGitHubRaw,
		Client:  &http.Client{Timeout: 20 * time.Second},
		Limiter: rate.NewLimiter(rate.Limit(rps), 4),
	}
}

func (g *GitHub) Name() string {
	return "github:" + g.Org + "/" + g.Repo
}

type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

func (g *GitHub) List(ctx context.Context, pattern string) ([]string, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", strings.TrimRight(g.APIURL, "/"), g.Org, g.Repo, globDir(pattern))
	if g.Ref != "" {
		u += "?ref=" + url.QueryEscape(g.Ref)
	}

	resp, err := g.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []contentEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode github listing: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == "file" {
			names = append(names, e.Path)
		}
	}
	return filterMatches(pattern, names)
}

func (g *GitHub) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	ref := g.Ref
	if ref == "" {
		ref = "HEAD"
	}
	u := fmt.Sprintf("%s/%s/%s/%s/%s", strings.TrimRight(g.RawURL, "/"), g.Org, g.Repo, ref, strings.TrimPrefix(name, "/"))
	resp, err := g.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (g *GitHub) get(ctx context.Context, u string) (*http.Response, error) {
	if g.Limiter != nil {
		if err := g.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		resp.Body.Close()
		return nil, fmt.Errorf("github HTTP %d for %s: %s", resp.StatusCode, u, strings.TrimSpace(string(body)))
	}
	return resp, nil
}
