package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const pagesDir = "pages"

// SavePage archives the raw markup of a member's register page so extraction
// can be re-run without touching the network.
func (s *Storage) SavePage(memberName, markup string) error {
	dir := filepath.Join(s.dataDir, pagesDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating pages directory: %w", err)
	}

	path := filepath.Join(dir, pageFileName(memberName))
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}

// LoadPage returns the archived markup for a member, or an error when the
// member's page was never archived.
func (s *Storage) LoadPage(memberName string) (string, error) {
	path := filepath.Join(s.dataDir, pagesDir, pageFileName(memberName))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading archived page for %q: %w", memberName, err)
	}
	return string(data), nil
}

// ArchivedMembers lists the member names that have an archived page.
func (s *Storage) ArchivedMembers() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.dataDir, pagesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing archived pages: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	return names, nil
}

// pageFileName maps a display name like "Abbott, Ms Diane " onto a safe
// file name. The mapping is lossy but stable, which is all archival needs.
func pageFileName(memberName string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(memberName) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ".html"
}
