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


package filter

import (
	"log/slog"

	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

// Cascade narrows a candidate pool through an ordered list of stages.
// Soft stages that would starve the pool are skipped; only the
// demographic stage may empty it.
type Cascade struct {
	stages []Stage
	logger *slog.Logger
}

// Option configures a Cascade.
type Option func(*Cascade)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cascade) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// WithStages replaces the default stage list. Stages execute in the
// order given.
func WithStages(stages []Stage) Option {
	return func(c *Cascade) {
		c.stages = stages
	}
}

// NewCascade creates a filter cascade with the standard stage order:
// demographic, goal, industry, location, budget, time.
func NewCascade(tax *taxonomy.Taxonomy, opts ...Option) *Cascade {
	c := &Cascade{
		stages: []Stage{
			&demographicStage{taxonomy: tax},
			&goalStage{taxonomy: tax},
			&industryStage{threshold: industryExclusionThreshold},
			&locationStage{},
			&budgetStage{taxonomy: tax},
			&timeStage{taxonomy: tax},
		},
		logger: slog.Default().With("component", "filter-cascade"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Filter narrows the pool against the intent.
func (c *Cascade) Filter(pool []*core.Event, intent *core.UserIntent) []*core.Event {
	return c.FilterWithMonitor(pool, intent, nil)
}

// FilterWithMonitor narrows the pool with per-stage monitoring.
// The monitor receives callbacks for each stage decision. Passing nil
// disables monitoring.
//
// For a non-empty input pool the result is non-empty unless the
// demographic stage alone emptied it.
func (c *Cascade) FilterWithMonitor(pool []*core.Event, intent *core.UserIntent, monitor Monitor) []*core.Event {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(len(pool))

	current := pool
	for _, stage := range c.stages {
		if len(current) == 0 {
			break
		}
		if !stage.Applies(intent) {
			continue
		}

		result := stage.Apply(current, intent)

		if !stage.Hard() && starved(stage, current, result.Pool) {
			c.logger.Warn("filter stage would starve pool, skipping",
				"stage", stage.Name(),
				"pool", len(current),
				"would_keep", len(result.Pool))
			monitor.StageSkipped(stage.Name(), len(current))
			continue
		}

		if result.Lenient {
			c.logger.Info("stage matched via lenient keyword pass",
				"stage", stage.Name(),
				"matched", len(result.Pool))
			monitor.LenientMatch(stage.Name(), len(result.Pool))
		}

		monitor.StageApplied(stage.Name(), len(current), len(result.Pool))
		current = result.Pool
	}

	monitor.Finish(len(current))
	return current
}

// starved reports whether applying the stage would shrink the pool
// below the stage's floor. A floor larger than the current pool cannot
// be met, so it degrades to requiring a non-empty result.
func starved(stage Stage, current, result []*core.Event) bool {
	floor := stage.Floor()
	if len(current) <= floor {
		floor = 1
	}
	return len(result) < floor
}
