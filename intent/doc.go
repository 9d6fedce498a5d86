// Package intent turns free-text queries into structured user intent.
//
// Two extraction strategies exist: an AI-backed one that asks the
// configured intent service to interpret the query against the tag
// catalogue, and a deterministic keyword strategy driven entirely by
// the taxonomy's phrase tables. The keyword strategy is the permanent
// fallback: any service failure or malformed response drops the AI
// result in full and re-derives intent from keywords, so extraction
// only ever fails on an invalid query.
package intent
