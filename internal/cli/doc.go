// Package cli implements the command-line interface for mp-register.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping
// the register, re-running extraction from archived pages, reporting
// per-member totals (text/JSON), exporting to CSV or PostgreSQL, and
// rendering charts. It coordinates the pipeline, storage, and charts
// packages.
package cli
