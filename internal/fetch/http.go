package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// UserAgent identifies the scraper to the register site.
	UserAgent = "mp-register/1.0 (github.com/acollard/mp-register)"

	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 30 * time.Second

	// defaultMaxRetries bounds the exponential backoff retry loop.
	defaultMaxRetries = 3
)

// HTTPFetcher fetches pages with a plain HTTP client, retrying transient
// failures with exponential backoff.
type HTTPFetcher struct {
	client     *http.Client
	maxRetries uint64
}

// NewHTTP creates an HTTPFetcher. A non-positive timeout falls back to the
// default.
func NewHTTP(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		client:     &http.Client{Timeout: timeout},
		maxRetries: defaultMaxRetries,
	}
}

// Fetch retrieves the page at url and returns its markup.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var markup string

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}

		markup = string(body)
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), f.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return "", err
	}

	return markup, nil
}
