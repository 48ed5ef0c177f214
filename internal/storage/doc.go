// Package storage provides persistence for extraction results.
//
// The storage package manages a local JSON snapshot mapping member names to
// their extracted donation lists, plus an archive of raw member pages so
// extraction can be re-run offline. The snapshot is written after each member
// is fully processed, so an interrupted run loses at most the in-flight
// member and a restart resumes past everyone already present.
// Extracted donations can additionally be exported to CSV or PostgreSQL.
package storage
