// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recommend

import (
	"context"
	"log/slog"

	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/filter"
	"github.com/poiesic/eventmatch/intent"
	"github.com/poiesic/eventmatch/rank"
	"github.com/poiesic/eventmatch/score"
	"github.com/poiesic/eventmatch/storage"
	"github.com/poiesic/eventmatch/taxonomy"
)

const (
	// DefaultTopK is used when a request does not specify a result count.
	DefaultTopK = 5

	// defaultPoolLimit bounds how many recent events are pulled from the
	// catalog per query.
	defaultPoolLimit = 1000

	// NoMatchesMessage is set on recommendations with zero results.
	NoMatchesMessage = "no events matched your query"
)

// Request is one recommendation query.
type Request struct {
	Query string
	TopK  int  // 0 means DefaultTopK
	UseAI bool // use the AI intent and ranking services when available
}

// Recommender runs the full pipeline: intent extraction, cascade
// filtering, scoring, ranking, and the best-effort audit write.
// Requests share no mutable state and may run fully in parallel.
type Recommender struct {
	extractor  *intent.Extractor
	cascade    *filter.Cascade
	scorer     *score.Scorer
	ranker     *rank.Ranker
	scoreOrder *rank.Ranker // fallback ranker, used when AI is not requested
	events     storage.EventRepository
	audit      storage.AuditRepository // may be nil, auditing is then disabled
	monitor    filter.Monitor
	observer   QueryObserver
	poolLimit  int
	logger     *slog.Logger
}

// QueryObserver receives one callback per processed query. The metrics
// package provides a Prometheus-backed implementation.
type QueryObserver interface {
	ObserveQuery(useAI bool, resultCount int)
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// WithPoolLimit bounds the catalog page size per query.
func WithPoolLimit(limit int) Option {
	return func(r *Recommender) {
		if limit > 0 {
			r.poolLimit = limit
		}
	}
}

// WithFilterMonitor attaches a monitor to every filter run.
func WithFilterMonitor(monitor filter.Monitor) Option {
	return func(r *Recommender) {
		r.monitor = monitor
	}
}

// WithQueryObserver attaches a per-query observer.
func WithQueryObserver(observer QueryObserver) Option {
	return func(r *Recommender) {
		r.observer = observer
	}
}

// NewRecommender creates a recommender over the given taxonomy, AI
// provider, and repositories. The provider may be nil for a fully
// deterministic pipeline; the audit repository may be nil to disable
// auditing.
func NewRecommender(
	tax *taxonomy.Taxonomy,
	provider ai.Provider,
	events storage.EventRepository,
	audit storage.AuditRepository,
	opts ...Option,
) (*Recommender, error) {
	if events == nil {
		return nil, ErrEventRepositoryRequired
	}

	var intentService ai.IntentService
	var rankingService ai.RankingService
	if provider != nil {
		intentService = provider.IntentService()
		rankingService = provider.RankingService()
	}

	r := &Recommender{
		extractor:  intent.NewExtractor(tax, intentService),
		cascade:    filter.NewCascade(tax),
		scorer:     score.NewScorer(tax),
		ranker:     rank.NewRanker(rankingService),
		scoreOrder: rank.NewRanker(nil),
		events:     events,
		audit:     audit,
		poolLimit: defaultPoolLimit,
		logger:    slog.Default().With("component", "recommender"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Recommend processes one query end to end. The only client-facing
// error is an invalid query or a catalog read failure; every
// service-level problem downstream degrades to a deterministic
// fallback.
func (r *Recommender) Recommend(ctx context.Context, req *Request) (*core.Recommendation, error) {
	userIntent, err := r.extractor.Extract(ctx, req.Query, req.UseAI)
	if err != nil {
		return nil, err
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	pool, err := r.events.GetRecentEvents(ctx, r.poolLimit)
	if err != nil {
		return nil, err
	}

	filtered := r.cascade.FilterWithMonitor(pool, userIntent, r.monitor)
	if len(filtered) == 0 {
		r.logger.Info("no candidates after filtering", "pool", len(pool))
		r.observeQuery(req.UseAI, 0)
		r.recordAudit(ctx, req.Query, userIntent, 0)
		return &core.Recommendation{
			Results: []*core.RankedResult{},
			Message: NoMatchesMessage,
		}, nil
	}

	scored := r.scorer.ScoreAll(filtered, userIntent)

	ranker := r.scoreOrder
	if req.UseAI {
		ranker = r.ranker
	}
	results, rationale := ranker.Rank(ctx, scored, userIntent, req.Query, topK)

	r.observeQuery(req.UseAI, len(results))
	r.recordAudit(ctx, req.Query, userIntent, len(results))

	return &core.Recommendation{
		Results:   results,
		Count:     len(results),
		Rationale: rationale,
	}, nil
}

func (r *Recommender) observeQuery(useAI bool, resultCount int) {
	if r.observer != nil {
		r.observer.ObserveQuery(useAI, resultCount)
	}
}

// recordAudit appends a query record. Fire-and-forget: failures are
// logged and swallowed, and the write survives caller cancellation.
func (r *Recommender) recordAudit(ctx context.Context, query string, userIntent *core.UserIntent, resultCount int) {
	if r.audit == nil {
		return
	}
	record := &core.AuditRecord{
		Query:       query,
		Goals:       userIntent.Goals,
		Industries:  userIntent.Industries,
		ResultCount: resultCount,
	}
	if _, err := r.audit.AppendQueryRecord(context.WithoutCancel(ctx), record); err != nil {
		r.logger.Warn("failed to append audit record", "err", err)
	}
}
