package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// TestStaticStylesheetServed verifies that the static file server serves
// the stylesheet at /static/style.css with a CSS content type.
func TestStaticStylesheetServed(t *testing.T) {
	// Serve files from the repo's static directory (relative to cmd/cityguide)
	staticDir := filepath.Join("..", "..", "static")
	mux := http.NewServeMux()
	fs := http.FileServer(http.Dir(staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/static/style.css")
	if err != nil {
		t.Fatalf("failed to GET style.css: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "text/css") {
		t.Fatalf("unexpected Content-Type: %s", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	if !strings.Contains(string(body), ".page-shell") {
		t.Fatalf("expected stylesheet to contain .page-shell rules")
	}
}
