// Package fetch provides page fetching for the register scraper: URL in,
// raw markup out. Two implementations exist, a plain HTTP client and a
// headless-browser fetcher for runs where the register site requires a full
// page render.
package fetch

import "context"

// Fetcher retrieves the raw markup of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
