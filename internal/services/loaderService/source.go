package loaderservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/redjax/csvdash/internal/utils/path"
)

//go:generate mockgen -destination=source_mock.go -package=loaderservice -source=source.go

// Source opens the raw CSV text of a table by name.
type Source interface {
	Open(ctx context.Context, table string) (io.ReadCloser, error)
}

// DirSource reads {Dir}/{table}.csv from local disk.
type DirSource struct {
	Dir string
}

// NewDirSource expands a leading ~ in dir.
func NewDirSource(dir string) (*DirSource, error) {
	expanded, err := path.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	return &DirSource{Dir: expanded}, nil
}

func (s *DirSource) Open(ctx context.Context, table string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := filepath.Join(s.Dir, table+".csv")
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	return f, nil
}

// HTTPSource fetches {BaseURL}/csv/{table}.csv, the layout a static site
// serves its public csv folder under.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid source url scheme: %q", u.Scheme)
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *HTTPSource) Open(ctx context.Context, table string) (io.ReadCloser, error) {
	target := fmt.Sprintf("%s/csv/%s.csv", s.BaseURL, url.PathEscape(table))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET CSV: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to GET CSV: %s returned %s", target, resp.Status)
	}
	return resp.Body, nil
}
