// Package scraper provides HTML parsing for the parliamentary register of
// members' financial interests.
//
// The scraper package turns the register's contents page into a map of member
// display names to their individual page URLs, and decomposes an individual
// member page into the ordered text segments (numbered category headers and
// indented informational paragraphs) that the extraction heuristics consume.
package scraper
