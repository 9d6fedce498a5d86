// Package filter narrows an event pool against structured user intent.
//
// Filtering runs as a cascade of ordered stages. The demographic stage
// is hard: a women-focused query only gets women-focused events, even
// if that leaves nothing. Every other stage is soft and subject to the
// no-starvation policy: a stage whose result would fall below its floor
// is skipped, keeping the pool as of the previous stage, because an
// unfiltered-but-scored pool beats an empty answer. The goal stage
// additionally retries with lenient keyword matching over event text
// before giving up, and industry preferences only become exclusionary
// above a pool-size threshold.
package filter
