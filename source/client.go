// Package source is the report-source side of the pipeline: it downloads
// the monthly workbook and decodes the pages the extractor needs into
// in-memory sheets. Unlike extraction, failures here are fatal — a run must
// not produce a record from an incomplete sheet set.
package source

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
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client downloads report workbooks from the publisher's site.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// ClientConfig configures a download client. HTTPClient is injectable for
// tests; when nil a plain client with the given timeout is used.
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient httpDoer
}

// NewClient validates the base URL and builds a client.
func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("source base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid source base URL %q", cfg.BaseURL)
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, httpClient: doer}, nil
}

// Filename returns the published workbook name for a report month:
// two-digit month then two-digit year, e.g. (2026, 2) -> "wasde0226.xls".
func Filename(year, month int) string {
	return fmt.Sprintf("wasde%02d%02d.xls", month, year%100)
}

// Download fetches the workbook for (year, month) into destDir and returns
// the local path. Any transport or status failure aborts the run.
func (c *Client) Download(ctx context.Context, year, month int, destDir string) (string, error) {
	filename := Filename(year, month)
	reportURL := c.baseURL + "/" + filename

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reportURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", reportURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", reportURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", reportURL, resp.Status)
	}

	local := filepath.Join(destDir, filename)
	out, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", local, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("save %s: %w", local, err)
	}

	return local, nil
}
