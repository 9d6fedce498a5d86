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


package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/poiesic/eventmatch/filter"
	"github.com/poiesic/eventmatch/ingestion"
	"github.com/poiesic/eventmatch/recommend"
)

const namespace = "eventmatch"

// FilterMetrics exports filter cascade telemetry. It implements
// filter.Monitor so it can be attached to a recommender directly.
type FilterMetrics struct {
	cascadeRuns    prometheus.Counter
	stageApplied   *prometheus.CounterVec
	stageSkipped   *prometheus.CounterVec
	lenientMatches *prometheus.CounterVec
	finalPoolSize  prometheus.Histogram
}

var _ filter.Monitor = (*FilterMetrics)(nil)

// NewFilterMetrics creates and registers filter metrics with the given
// registerer. Pass prometheus.DefaultRegisterer outside of tests.
func NewFilterMetrics(reg prometheus.Registerer) *FilterMetrics {
	factory := promauto.With(reg)
	return &FilterMetrics{
		cascadeRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "cascade_runs_total",
			Help:      "Total filter cascade executions",
		}),
		stageApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "stage_applied_total",
			Help:      "Stage applications by stage name",
		}, []string{"stage"}),
		stageSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "stage_skipped_total",
			Help:      "Stages skipped by the no-starvation policy, by stage name",
		}, []string{"stage"}),
		lenientMatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "lenient_matches_total",
			Help:      "Stage results produced by the lenient keyword pass, by stage name",
		}, []string{"stage"}),
		finalPoolSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "final_pool_size",
			Help:      "Candidate pool size after the full cascade",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

func (m *FilterMetrics) Start(_ int) {
	m.cascadeRuns.Inc()
}

func (m *FilterMetrics) StageApplied(stage string, _, _ int) {
	m.stageApplied.WithLabelValues(stage).Inc()
}

func (m *FilterMetrics) StageSkipped(stage string, _ int) {
	m.stageSkipped.WithLabelValues(stage).Inc()
}

func (m *FilterMetrics) LenientMatch(stage string, _ int) {
	m.lenientMatches.WithLabelValues(stage).Inc()
}

func (m *FilterMetrics) Finish(finalSize int) {
	m.finalPoolSize.Observe(float64(finalSize))
}

// PipelineMetrics exports query and ingestion telemetry. It satisfies
// both the recommender's query observer and the ingestion recorder.
type PipelineMetrics struct {
	queriesTotal    *prometheus.CounterVec
	resultCount     prometheus.Histogram
	eventsIngested  prometheus.Counter
	taggingFailures prometheus.Counter
}

var (
	_ recommend.QueryObserver = (*PipelineMetrics)(nil)
	_ ingestion.Recorder      = (*PipelineMetrics)(nil)
)

// NewPipelineMetrics creates and registers pipeline metrics with the
// given registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	factory := promauto.With(reg)
	return &PipelineMetrics{
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "queries_total",
			Help:      "Processed queries by extraction mode: ai or deterministic",
		}, []string{"mode"}),
		resultCount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "result_count",
			Help:      "Results returned per query",
			Buckets:   []float64{0, 1, 3, 5, 10, 20},
		}),
		eventsIngested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "events_total",
			Help:      "Events written to the catalog",
		}),
		taggingFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ingestion",
			Name:      "tagging_failures_total",
			Help:      "Events the tagger failed to categorize",
		}),
	}
}

// ObserveQuery records one processed query.
func (m *PipelineMetrics) ObserveQuery(useAI bool, resultCount int) {
	mode := "deterministic"
	if useAI {
		mode = "ai"
	}
	m.queriesTotal.WithLabelValues(mode).Inc()
	m.resultCount.Observe(float64(resultCount))
}

// EventsIngested records catalog writes.
func (m *PipelineMetrics) EventsIngested(count int) {
	m.eventsIngested.Add(float64(count))
}

// TaggingFailure records one tagger failure.
func (m *PipelineMetrics) TaggingFailure() {
	m.taggingFailures.Inc()
}
