package scraper

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/acollard/mp-register/internal/fetch"
)

// Scraper fetches and parses register pages.
type Scraper struct {
	fetcher  fetch.Fetcher
	indexURL string
	baseURL  string
}

// New creates a Scraper that reads the register through the given fetcher.
// indexURL is the contents page listing all members; baseURL is the prefix
// relative member links are joined to.
func New(fetcher fetch.Fetcher, indexURL, baseURL string) *Scraper {
	return &Scraper{
		fetcher:  fetcher,
		indexURL: indexURL,
		baseURL:  baseURL,
	}
}

// MemberLink pairs a member's display name with their register page URL.
type MemberLink struct {
	Name string
	URL  string
}

// FetchIndex fetches the contents page and returns the member links it lists,
// sorted by display name for deterministic iteration.
func (s *Scraper) FetchIndex(ctx context.Context) ([]MemberLink, error) {
	markup, err := s.fetcher.Fetch(ctx, s.indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching contents page: %w", err)
	}
	return ParseIndex(strings.NewReader(markup), s.baseURL)
}

// FetchSegments fetches one member's register page and returns its text
// segments in document order, along with the raw markup for archival.
func (s *Scraper) FetchSegments(ctx context.Context, url string) ([]string, string, error) {
	markup, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("fetching member page: %w", err)
	}
	segments, err := ParseSegments(strings.NewReader(markup))
	if err != nil {
		return nil, "", err
	}
	return segments, markup, nil
}

// ParseIndex extracts member links from the contents page markup.
//
// The contents page distinguishes member links from navigation links by two
// quirks of the register's formatting: display names carry a trailing space,
// and member hrefs are bare .htm filenames with no path separator.
func ParseIndex(r io.Reader, baseURL string) ([]MemberLink, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing contents page: %w", err)
	}

	byName := make(map[string]string)
	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		name := sel.Text()
		if name == "" || !strings.HasSuffix(name, " ") {
			return
		}

		href, ok := sel.Attr("href")
		if !ok || !strings.Contains(href, ".htm") || strings.Contains(href, "/") {
			return
		}

		byName[name] = baseURL + href
	})

	links := make([]MemberLink, 0, len(byName))
	for name, url := range byName {
		links = append(links, MemberLink{Name: name, URL: url})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Name < links[j].Name })

	return links, nil
}

// ParseSegments extracts the text segments of a member page in document
// order. Informational paragraphs carry the "indent" or "indent2" class;
// numbered category headers sit in standalone strong tags. A strong tag
// nested inside an already-captured paragraph is skipped so its text is not
// counted twice.
func ParseSegments(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing member page: %w", err)
	}

	segments := make([]string, 0)
	doc.Find("p.indent, p.indent2, strong").Each(func(i int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "strong" && sel.ParentsFiltered("p.indent, p.indent2").Length() > 0 {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		segments = append(segments, text)
	})

	return segments, nil
}
