// Package extract turns the loosely-formatted text of a register-of-interests
// page into structured donation records.
//
// The extraction is heuristic and best-effort: it targets one specific (and
// inconsistently formatted) document family. Segments are classified in
// priority order as numbered headers, explicitly stated totals, date-ranged
// periodic payments, or itemized sums, with hours-worked annotations
// normalized to an annual figure. Text that yields no monetary amount yields
// no record.
package extract
