package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

type fakeDoer struct {
	status   int
	body     []byte
	requests []string
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req.URL.String())
	return &http.Response{
		StatusCode: f.status,
		Status:     fmt.Sprintf("%d %s", f.status, http.StatusText(f.status)),
		Body:       io.NopCloser(bytes.NewReader(f.body)),
	}, nil
}

func TestFilename(t *testing.T) {
	t.Parallel()

	if got := Filename(2026, 2); got != "wasde0226.xls" {
		t.Fatalf("Filename(2026, 2) = %q, want wasde0226.xls", got)
	}
	if got := Filename(2025, 11); got != "wasde1125.xls" {
		t.Fatalf("Filename(2025, 11) = %q, want wasde1125.xls", got)
	}
}

func TestClient_DownloadWritesFile(t *testing.T) {
	t.Parallel()

	doer := &fakeDoer{status: http.StatusOK, body: []byte("workbook-bytes")}
	client, err := NewClient(ClientConfig{BaseURL: "https://example.gov/oce/commodity/wasde/", HTTPClient: doer})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	dir := t.TempDir()
	path, err := client.Download(context.Background(), 2026, 2, dir)
	if err != nil {
		t.Fatalf("download: %v", err)
	}

	if path != filepath.Join(dir, "wasde0226.xls") {
		t.Fatalf("unexpected local path: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(content) != "workbook-bytes" {
		t.Fatalf("unexpected file content: %q", content)
	}
	if len(doer.requests) != 1 || doer.requests[0] != "https://example.gov/oce/commodity/wasde/wasde0226.xls" {
		t.Fatalf("unexpected request URLs: %v", doer.requests)
	}
}

func TestClient_DownloadRejectsNonOKStatus(t *testing.T) {
	t.Parallel()

	doer := &fakeDoer{status: http.StatusNotFound}
	client, err := NewClient(ClientConfig{BaseURL: "https://example.gov/wasde", HTTPClient: doer})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Download(context.Background(), 2026, 2, t.TempDir()); err == nil {
		t.Fatalf("expected an error for 404 response")
	}
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{BaseURL: ""}); err == nil {
		t.Fatalf("expected an error for empty base URL")
	}
	if _, err := NewClient(ClientConfig{BaseURL: "not-a-url"}); err == nil {
		t.Fatalf("expected an error for base URL without scheme")
	}
}
