package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MaxLogoBytes caps the fetched logotype size.
const MaxLogoBytes = 2 << 20

// DefaultFetchTimeout bounds the single best-effort logotype request.
const DefaultFetchTimeout = 5 * time.Second

// HTTPFetcher retrieves a logotype image over HTTP.
// One fetch per document generation, no retry: callers fall back to a
// wordmark on any error.
type HTTPFetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates a fetcher for the given URL.
// A nil client selects http.DefaultClient; a zero timeout selects
// DefaultFetchTimeout.
func NewHTTPFetcher(url string, client *http.Client, timeout time.Duration) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{url: url, client: client, timeout: timeout}
}

// Fetch retrieves the logotype bytes and their MIME type.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrLogoFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrLogoFetch, err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort fetch

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: status %d", ErrLogoFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxLogoBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading body: %v", ErrLogoFetch, err)
	}
	if len(data) > MaxLogoBytes {
		return nil, "", fmt.Errorf("%w: over %d bytes", ErrLogoTooLarge, MaxLogoBytes)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", fmt.Errorf("%w: %q", ErrLogoNotImage, mime)
	}

	return data, mime, nil
}
