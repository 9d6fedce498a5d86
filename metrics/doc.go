// Package metrics exports Prometheus collectors for the filter cascade
// and the query and ingestion pipelines.
package metrics
