package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultWait is the fixed budget a page is given to finish rendering.
const DefaultWait = 10 * time.Second

// BrowserFetcher fetches pages through a headless Chrome instance, for runs
// where the register site serves script-rendered markup.
type BrowserFetcher struct {
	execPath string
	wait     time.Duration
}

// NewBrowser creates a BrowserFetcher. An empty chromeBin triggers binary
// auto-discovery; a non-positive wait falls back to the default budget.
func NewBrowser(chromeBin string, wait time.Duration) *BrowserFetcher {
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	if wait <= 0 {
		wait = DefaultWait
	}
	return &BrowserFetcher{
		execPath: chromeBin,
		wait:     wait,
	}
}

// Fetch navigates to url in a fresh tab, waits out the render budget, and
// returns the rendered markup.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)
	if f.execPath != "" {
		opts = append(opts, chromedp.ExecPath(f.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.wait+DefaultTimeout)
	defer cancelTimeout()

	var markup string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(f.wait),
		chromedp.OuterHTML("html", &markup),
	)
	if err != nil {
		return "", fmt.Errorf("browser fetch: %w", err)
	}

	return markup, nil
}

// findChromeBinary locates a Chrome/Chromium binary.
func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
