// Package pipeline drives a full extraction run: fetch the register index,
// process each member's page in turn, and persist results as it goes.
//
// The pipeline is deliberately single-threaded: one member's document is
// fully fetched, extracted, and persisted before the next begins, so an
// interrupted run loses at most the in-flight member and a restart resumes
// by skipping members already present in the snapshot.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/acollard/mp-register/internal/extract"
	"github.com/acollard/mp-register/internal/logger"
	"github.com/acollard/mp-register/internal/register"
	"github.com/acollard/mp-register/internal/roster"
	"github.com/acollard/mp-register/internal/scraper"
	"github.com/acollard/mp-register/internal/storage"
)

// Pipeline wires the scraper, roster, extractor, and storage together.
type Pipeline struct {
	scraper   *scraper.Scraper
	roster    *roster.Roster
	store     *storage.Storage
	extractor *extract.Extractor
	rateLimit time.Duration
}

// New creates a Pipeline.
func New(sc *scraper.Scraper, r *roster.Roster, store *storage.Storage, ex *extract.Extractor, rateLimit time.Duration) *Pipeline {
	return &Pipeline{
		scraper:   sc,
		roster:    r,
		store:     store,
		extractor: ex,
		rateLimit: rateLimit,
	}
}

// Run processes every member listed on the register index. Members already
// present in the snapshot are skipped, so a restarted run resumes where the
// previous one stopped. A failed fetch skips that member and continues; the
// snapshot is saved after each member so earlier results survive a crash.
func (p *Pipeline) Run(ctx context.Context) (*storage.Snapshot, error) {
	snapshot, err := p.store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	links, err := p.scraper.FetchIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching index: %w", err)
	}

	logger.Info("register index fetched", logger.Fields{
		"members":           len(links),
		"already_processed": len(snapshot.Members),
	})

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return snapshot, err
		}

		if snapshot.Has(link.Name) {
			logger.Debug("skipping processed member", logger.Fields{"member": link.Name})
			logger.Incr("members_skipped")
			continue
		}

		m, err := p.processMember(ctx, link)
		if err != nil {
			logger.Error("member failed, continuing", logger.Fields{"member": link.Name}, err)
			logger.Incr("members_failed")
			continue
		}

		snapshot.Put(m)
		if err := p.store.SaveSnapshot(snapshot); err != nil {
			return snapshot, fmt.Errorf("saving snapshot: %w", err)
		}
		logger.Incr("members_processed")

		if p.rateLimit > 0 {
			time.Sleep(p.rateLimit)
		}
	}

	logger.Info("run complete", logger.CounterSummary())
	return snapshot, nil
}

// processMember fetches one member's page, archives the markup, and extracts
// their donation records.
func (p *Pipeline) processMember(ctx context.Context, link scraper.MemberLink) (*register.Member, error) {
	segments, markup, err := p.scraper.FetchSegments(ctx, link.URL)
	if err != nil {
		return nil, err
	}

	if err := p.store.SavePage(link.Name, markup); err != nil {
		// Archival failure is not fatal; extraction already has the segments.
		logger.Warn("page archive failed", logger.Fields{"member": link.Name, "error": err.Error()})
	}

	m := register.NewMember(link.Name)
	m.SourceURL = link.URL
	p.roster.Seed(m)

	p.populate(m, segments)

	logger.Info("member extracted", logger.Fields{
		"member":      link.Name,
		"party":       m.Party,
		"donations":   len(m.Donations),
		"total_value": m.TotalValue(),
	})

	return m, nil
}

// Reextract re-runs extraction for one member from their archived page and
// replaces their donation list in the snapshot. Member identity (party,
// constituency, source URL) is preserved.
func (p *Pipeline) Reextract(name string) (*register.Member, error) {
	snapshot, err := p.store.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	markup, err := p.store.LoadPage(name)
	if err != nil {
		return nil, err
	}

	segments, err := scraper.ParseSegments(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	m, ok := snapshot.Members[name]
	if !ok {
		m = register.NewMember(name)
		p.roster.Seed(m)
	}

	m.ClearDonations()
	p.populate(m, segments)

	snapshot.Put(m)
	if err := p.store.SaveSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	return m, nil
}

func (p *Pipeline) populate(m *register.Member, segments []string) {
	for _, d := range p.extractor.Extract(segments) {
		m.AddDonation(d)
		logger.Incr("records_extracted")
		if d.Hours.State == register.HoursMismatch {
			logger.Warn("frequency mismatch in entry", logger.Fields{
				"member": m.Name,
				"text":   d.RawText,
			})
			logger.Incr("frequency_mismatches")
		}
	}
}
