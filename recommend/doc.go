// Package recommend orchestrates the recommendation pipeline.
//
// A query flows through intent extraction, cascade filtering over a
// recent-events page from the catalog, taxonomy-weighted scoring, and
// ranking with justification, then lands in the audit trail as a
// fire-and-forget side effect. Only query validation and catalog reads
// can fail the caller; the AI-dependent steps all carry deterministic
// fallbacks.
package recommend
