package filter

import (
	"strings"

	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

const (
	// industryExclusionThreshold is the pool size above which industry
	// preferences become exclusionary. Below it they only bias scoring.
	industryExclusionThreshold = 2000

	// softStageFloor is the minimum pool size the soft location, budget,
	// and time stages must preserve to take effect.
	softStageFloor = 3
)

// Stage is one step of the filter cascade. Stages are stateless and
// safe for concurrent use.
type Stage interface {
	Name() string

	// Applies reports whether the intent activates this stage.
	Applies(intent *core.UserIntent) bool

	// Apply returns the subset of pool selected by this stage.
	Apply(pool []*core.Event, intent *core.UserIntent) *StageResult

	// Hard reports whether an empty result stands instead of being
	// skipped by the cascade's no-starvation policy.
	Hard() bool

	// Floor is the minimum result size below which the cascade skips
	// this stage. Hard stages ignore it.
	Floor() int
}

// StageResult carries a stage's selected subset plus whether the stage
// fell back to lenient keyword matching, which telemetry keeps
// distinguishable from strict tag matches.
type StageResult struct {
	Pool    []*core.Event
	Lenient bool
}

// demographicStage keeps only demographically matching events when the
// intent asks for them. It is the single hard stage: an identity-based
// preference is honored even when nothing matches.
type demographicStage struct {
	taxonomy *taxonomy.Taxonomy
}

func (s *demographicStage) Name() string { return "demographic" }
func (s *demographicStage) Hard() bool   { return true }
func (s *demographicStage) Floor() int   { return 1 }

func (s *demographicStage) Applies(intent *core.UserIntent) bool {
	return intent.WomenFocused
}

func (s *demographicStage) Apply(pool []*core.Event, _ *core.UserIntent) *StageResult {
	var kept []*core.Event
	for _, event := range pool {
		if event.WomenFocused || s.taxonomy.MatchesDemographic(event.Name+" "+event.Description) {
			kept = append(kept, event)
		}
	}
	return &StageResult{Pool: kept}
}

// goalStage is two-tier: a strict pass over structured usage tags, then
// a lenient pass matching goal keywords against event text when the
// strict pass comes up empty.
type goalStage struct {
	taxonomy *taxonomy.Taxonomy
}

func (s *goalStage) Name() string { return "goal" }
func (s *goalStage) Hard() bool   { return false }
func (s *goalStage) Floor() int   { return 1 }

func (s *goalStage) Applies(intent *core.UserIntent) bool {
	return intent.HasGoals()
}

func (s *goalStage) Apply(pool []*core.Event, intent *core.UserIntent) *StageResult {
	var strict []*core.Event
	for _, event := range pool {
		if tagsIntersect(event.UsageTags, intent.Goals) {
			strict = append(strict, event)
		}
	}
	if len(strict) > 0 {
		return &StageResult{Pool: strict}
	}

	var lenient []*core.Event
	for _, event := range pool {
		text := event.Name + " " + event.Description
		for _, goal := range intent.Goals {
			if s.taxonomy.MatchesTag(text, goal, taxonomy.KindUsage) {
				lenient = append(lenient, event)
				break
			}
		}
	}
	return &StageResult{Pool: lenient, Lenient: true}
}

// industryStage only excludes above a pool-size threshold. At normal
// pool sizes industry preference biases scoring instead of filtering.
type industryStage struct {
	threshold int
}

func (s *industryStage) Name() string { return "industry" }
func (s *industryStage) Hard() bool   { return false }
func (s *industryStage) Floor() int   { return 1 }

func (s *industryStage) Applies(intent *core.UserIntent) bool {
	return intent.HasIndustries()
}

func (s *industryStage) Apply(pool []*core.Event, intent *core.UserIntent) *StageResult {
	if len(pool) <= s.threshold {
		return &StageResult{Pool: pool}
	}
	var kept []*core.Event
	for _, event := range pool {
		if tagsIntersect(event.IndustryTags, intent.Industries) {
			kept = append(kept, event)
		}
	}
	return &StageResult{Pool: kept}
}

// locationStage matches the intent's location hint against event
// location text.
type locationStage struct{}

func (s *locationStage) Name() string { return "location" }
func (s *locationStage) Hard() bool   { return false }
func (s *locationStage) Floor() int   { return softStageFloor }

func (s *locationStage) Applies(intent *core.UserIntent) bool {
	return intent.Location != ""
}

func (s *locationStage) Apply(pool []*core.Event, intent *core.UserIntent) *StageResult {
	want := strings.ToLower(intent.Location)
	var kept []*core.Event
	for _, event := range pool {
		if strings.Contains(strings.ToLower(event.Location), want) {
			kept = append(kept, event)
		}
	}
	return &StageResult{Pool: kept}
}

// budgetStage keeps free events when the intent prefers free. Events
// with no price text are unknown, not disqualified.
type budgetStage struct {
	taxonomy *taxonomy.Taxonomy
}

func (s *budgetStage) Name() string { return "budget" }
func (s *budgetStage) Hard() bool   { return false }
func (s *budgetStage) Floor() int   { return softStageFloor }

func (s *budgetStage) Applies(intent *core.UserIntent) bool {
	return intent.Budget == core.BudgetFree
}

func (s *budgetStage) Apply(pool []*core.Event, _ *core.UserIntent) *StageResult {
	var kept []*core.Event
	for _, event := range pool {
		if strings.TrimSpace(event.Price) == "" || s.taxonomy.BudgetOfText(event.Price) == core.BudgetFree {
			kept = append(kept, event)
		}
	}
	return &StageResult{Pool: kept}
}

// timeStage drops events with the opposite time-of-day signal. Events
// with no derivable time are kept.
type timeStage struct {
	taxonomy *taxonomy.Taxonomy
}

func (s *timeStage) Name() string { return "time" }
func (s *timeStage) Hard() bool   { return false }
func (s *timeStage) Floor() int   { return softStageFloor }

func (s *timeStage) Applies(intent *core.UserIntent) bool {
	return intent.TimePreference != core.TimeNone
}

func (s *timeStage) Apply(pool []*core.Event, intent *core.UserIntent) *StageResult {
	var kept []*core.Event
	for _, event := range pool {
		derived := s.taxonomy.TimeOfText(event.DateTime + " " + event.Name)
		if derived == core.TimeNone || derived == intent.TimePreference {
			kept = append(kept, event)
		}
	}
	return &StageResult{Pool: kept}
}

func tagsIntersect(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
