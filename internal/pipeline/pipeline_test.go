package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/acollard/mp-register/internal/extract"
	"github.com/acollard/mp-register/internal/register"
	"github.com/acollard/mp-register/internal/roster"
	"github.com/acollard/mp-register/internal/scraper"
	"github.com/acollard/mp-register/internal/storage"
)

// mapFetcher serves markup from a fixed URL map and records which URLs
// were requested.
type mapFetcher struct {
	pages    map[string]string
	requests []string
}

func (f *mapFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.requests = append(f.requests, url)
	markup, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("no page for %s", url)
	}
	return markup, nil
}

const testIndex = `<html><body>
<a href="abbot_d.htm">Abbott, Ms Diane </a>
<a href="burns_c.htm">Burns, Conor </a>
</body></html>`

const testMemberPage = `<html><body>
<strong>1. Employment and earnings</strong>
<p class="indent">Payment of £1,000 for an article. Hours: 4 hrs. (Registered 10 June 2021)</p>
</body></html>`

func newTestPipeline(t *testing.T, fetcher *mapFetcher) (*Pipeline, *storage.Storage) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}

	r, err := roster.Parse(strings.NewReader(testRoster))
	if err != nil {
		t.Fatalf("roster.Parse: %v", err)
	}

	sc := scraper.New(fetcher, "http://reg.test/contents.htm", "http://reg.test/")
	p := New(sc, r, store, extract.New(extract.DefaultConfig()), 0)
	return p, store
}

const testRoster = "last name,first name,party,constituency\n" +
	"Abbott,Diane,Labour,Hackney North\n" +
	"Burns,Conor,Conservative,Bournemouth West\n"

func TestRunProcessesAllMembers(t *testing.T) {
	fetcher := &mapFetcher{pages: map[string]string{
		"http://reg.test/contents.htm": testIndex,
		"http://reg.test/abbot_d.htm":  testMemberPage,
		"http://reg.test/burns_c.htm":  testMemberPage,
	}}
	p, store := newTestPipeline(t, fetcher)

	snapshot, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(snapshot.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(snapshot.Members))
	}

	m := snapshot.Members["Abbott, Ms Diane "]
	if m == nil {
		t.Fatal("Abbott missing from snapshot")
	}
	if m.Party != "Labour" {
		t.Errorf("expected roster-seeded party Labour, got %q", m.Party)
	}
	if len(m.Donations) != 1 {
		t.Fatalf("expected 1 donation, got %d", len(m.Donations))
	}
	if m.Donations[0].Amount != 1000 {
		t.Errorf("expected amount 1000, got %v", m.Donations[0].Amount)
	}

	// Fetched markup must have been archived for offline re-extraction.
	if _, err := store.LoadPage("Abbott, Ms Diane "); err != nil {
		t.Errorf("archived page missing: %v", err)
	}
}

func TestRunSkipsProcessedMembers(t *testing.T) {
	fetcher := &mapFetcher{pages: map[string]string{
		"http://reg.test/contents.htm": testIndex,
		"http://reg.test/abbot_d.htm":  testMemberPage,
		"http://reg.test/burns_c.htm":  testMemberPage,
	}}
	p, store := newTestPipeline(t, fetcher)

	done := storage.NewSnapshot()
	done.Put(register.NewMember("Abbott, Ms Diane "))
	if err := store.SaveSnapshot(done); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, url := range fetcher.requests {
		if url == "http://reg.test/abbot_d.htm" {
			t.Error("already-processed member was fetched again")
		}
	}
}

func TestRunContinuesPastFailedMember(t *testing.T) {
	// Abbott's page is missing from the fetcher: her fetch fails, but the
	// run carries on and Burns still lands in the snapshot.
	fetcher := &mapFetcher{pages: map[string]string{
		"http://reg.test/contents.htm": testIndex,
		"http://reg.test/burns_c.htm":  testMemberPage,
	}}
	p, _ := newTestPipeline(t, fetcher)

	snapshot, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if snapshot.Has("Abbott, Ms Diane ") {
		t.Error("failed member should not be in snapshot")
	}
	if !snapshot.Has("Burns, Conor ") {
		t.Error("member after the failed one should still be processed")
	}
}

func TestReextractReplacesDonations(t *testing.T) {
	fetcher := &mapFetcher{pages: map[string]string{
		"http://reg.test/contents.htm": testIndex,
		"http://reg.test/abbot_d.htm":  testMemberPage,
		"http://reg.test/burns_c.htm":  testMemberPage,
	}}
	p, store := newTestPipeline(t, fetcher)

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Re-extraction from the archived page is stable: same single record,
	// not appended twice.
	m, err := p.Reextract("Abbott, Ms Diane ")
	if err != nil {
		t.Fatalf("Reextract: %v", err)
	}
	if len(m.Donations) != 1 {
		t.Fatalf("expected 1 donation after re-extraction, got %d", len(m.Donations))
	}
	if m.Party != "Labour" {
		t.Errorf("identity fields should survive re-extraction, got party %q", m.Party)
	}

	reloaded, err := store.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(reloaded.Members["Abbott, Ms Diane "].Donations) != 1 {
		t.Error("re-extracted member not persisted")
	}
}
