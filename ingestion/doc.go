// Package ingestion loads raw events into the catalog. It parses the
// scraper's CSV export, enriches untagged events through the AI tagger
// on a bounded worker pool, and upserts the results. Tagging is
// best-effort: an event the tagger cannot categorize is stored untagged.
package ingestion
