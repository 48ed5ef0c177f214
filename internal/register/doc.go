// Package register provides types and functions for modelling Members of
// Parliament and the financial interests declared on their register pages.
//
// The register package handles member identity, the append-only donation list
// each member owns, and the derived aggregates (total value, total hours)
// computed over that list. Totals are never stored, only recomputed on demand.
package register
