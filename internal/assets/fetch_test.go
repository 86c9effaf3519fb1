package assets

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// pngHeader is enough for content sniffing to classify the body as an image.
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngHeader) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	data, mime, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(data, pngHeader) {
		t.Errorf("data = %q, want PNG header", data)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}
}

func TestHTTPFetcher_SniffsMissingContentType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress automatic detection header
		w.Write(pngHeader)               //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	_, mime, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("sniffed mime = %q, want image/png", mime)
	}
}

func TestHTTPFetcher_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, _, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(context.Background())
	if !errors.Is(err, ErrLogoFetch) {
		t.Errorf("Fetch error = %v, want %v", err, ErrLogoFetch)
	}
}

func TestHTTPFetcher_RejectsNonImage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not a logo</html>")) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	_, _, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(context.Background())
	if !errors.Is(err, ErrLogoNotImage) {
		t.Errorf("Fetch error = %v, want %v", err, ErrLogoNotImage)
	}
}

func TestHTTPFetcher_RejectsOversizedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(bytes.Repeat([]byte{0}, MaxLogoBytes+1)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	_, _, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(context.Background())
	if !errors.Is(err, ErrLogoTooLarge) {
		t.Errorf("Fetch error = %v, want %v", err, ErrLogoTooLarge)
	}
}

func TestHTTPFetcher_CancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngHeader) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPFetcher(srv.URL, nil, 0).Fetch(ctx)
	if err == nil {
		t.Error("Fetch succeeded with a cancelled context")
	}
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	t.Parallel()

	_, _, err := NewHTTPFetcher("://bad-url", nil, 0).Fetch(context.Background())
	if !errors.Is(err, ErrLogoFetch) {
		t.Errorf("Fetch error = %v, want %v", err, ErrLogoFetch)
	}
}
