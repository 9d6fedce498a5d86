package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/storage"
)

// Recorder counts ingestion outcomes. The metrics package provides a
// Prometheus-backed implementation.
type Recorder interface {
	EventsIngested(count int)
	TaggingFailure()
}

// Pipeline ingests raw events into the catalog, enriching untagged
// events through the AI tagger with a bounded worker pool.
type Pipeline struct {
	events   storage.EventRepository
	tagger   ai.EventTagger // may be nil, events are then stored as-is
	taggerWp *ants.Pool
	recorder Recorder
	logger   *slog.Logger
}

// Report summarizes one ingestion run.
type Report struct {
	Total       int // events written to the catalog
	Tagged      int // events enriched by the tagger
	TagFailures int // events the tagger could not categorize
	Skipped     int // input rows dropped before writing
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the tagging worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.taggerWp != nil {
			p.taggerWp.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.taggerWp = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithRecorder attaches an ingestion recorder.
func WithRecorder(recorder Recorder) Option {
	return func(p *Pipeline) error {
		p.recorder = recorder
		return nil
	}
}

// NewPipeline creates an ingestion pipeline. The tagger may be nil, in
// which case untagged events are stored without enrichment.
func NewPipeline(events storage.EventRepository, tagger ai.EventTagger, opts ...Option) (*Pipeline, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		events:   events,
		tagger:   tagger,
		taggerWp: pool,
		logger:   slog.Default().With("component", "ingestion"),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	return p, nil
}

// IngestEvents enriches and upserts a batch of events. Events that
// already carry usage tags skip enrichment. Tagging failures are logged
// and counted; the event is still written untagged, since the filter's
// lenient pass can match it through text.
func (p *Pipeline) IngestEvents(ctx context.Context, events []*core.Event) (*Report, error) {
	report := &Report{}

	valid := make([]*core.Event, 0, len(events))
	for _, event := range events {
		if err := core.ValidateEvent(event); err != nil {
			p.logger.Warn("skipping invalid event", "err", err)
			report.Skipped++
			continue
		}
		valid = append(valid, event)
	}

	if p.tagger != nil {
		p.tagBatch(ctx, valid, report)
	}

	if len(valid) == 0 {
		return report, nil
	}

	if _, err := p.events.AddEvents(ctx, valid...); err != nil {
		return report, err
	}
	report.Total = len(valid)

	if p.recorder != nil {
		p.recorder.EventsIngested(report.Total)
	}
	p.logger.Info("ingested events",
		"total", report.Total,
		"tagged", report.Tagged,
		"tag_failures", report.TagFailures,
		"skipped", report.Skipped)
	return report, nil
}

// tagBatch runs the tagger over untagged events on the worker pool.
// Each task writes only its own event, so no locking is needed beyond
// the report counters.
func (p *Pipeline) tagBatch(ctx context.Context, events []*core.Event, report *Report) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, event := range events {
		if len(event.UsageTags) > 0 {
			continue
		}
		event := event
		wg.Add(1)
		submitErr := p.taggerWp.Submit(func() {
			defer wg.Done()
			tags, err := p.tagger.TagEvent(ctx, event.Name, event.HostedBy, event.Description)
			if err != nil {
				p.logger.Warn("tagging failed", "event", event.Name, "err", err)
				mu.Lock()
				report.TagFailures++
				mu.Unlock()
				if p.recorder != nil {
					p.recorder.TaggingFailure()
				}
				return
			}
			event.UsageTags = tags.UsageTags
			event.IndustryTags = tags.IndustryTags
			event.EventTags = tags.EventTags
			event.WomenFocused = event.WomenFocused || tags.WomenFocused
			event.InviteOnly = event.InviteOnly || tags.InviteOnly
			mu.Lock()
			report.Tagged++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			p.logger.Error("failed to submit tagging task", "event", event.Name, "err", submitErr)
		}
	}
	wg.Wait()
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.taggerWp != nil {
		p.taggerWp.Release()
	}
}
