package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/core"
	"github.com/poiesic/eventmatch/taxonomy"
)

type recordingMonitor struct {
	applied []string
	skipped []string
	lenient []string
	started int
	final   int
}

func (m *recordingMonitor) Start(size int)                  { m.started = size }
func (m *recordingMonitor) StageApplied(s string, _, _ int) { m.applied = append(m.applied, s) }
func (m *recordingMonitor) StageSkipped(s string, _ int)    { m.skipped = append(m.skipped, s) }
func (m *recordingMonitor) LenientMatch(s string, _ int)    { m.lenient = append(m.lenient, s) }
func (m *recordingMonitor) Finish(size int)                 { m.final = size }

func TestDemographicStageIsHard(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Founders Mixer", WomenFocused: true},
		{Name: "Tech Talk"},
		{Name: "Breakfast Club", Description: "women in tech breakfast"},
	}

	result := cascade.Filter(pool, &core.UserIntent{WomenFocused: true})

	require.Len(t, result, 2)
	assert.Equal(t, "Founders Mixer", result[0].Name)
	assert.Equal(t, "Breakfast Club", result[1].Name)

	// Nothing matching: the hard stage is allowed to empty the pool.
	empty := cascade.Filter([]*core.Event{{Name: "Tech Talk"}}, &core.UserIntent{WomenFocused: true})
	assert.Empty(t, empty)
}

func TestGoalStageStrictMatch(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Pitch Night", UsageTags: []string{"find-angels", "networking"}},
		{Name: "Community Mixer", UsageTags: []string{"networking"}},
		{Name: "Untagged Event"},
	}

	result := cascade.Filter(pool, &core.UserIntent{Goals: []string{"find-angels"}})

	require.Len(t, result, 1)
	assert.Equal(t, "Pitch Night", result[0].Name)
}

func TestGoalStageLenientFallback(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Evening Social", UsageTags: []string{"networking"}, Description: "meet angel investors over drinks"},
		{Name: "Yoga Class", Description: "vinyasa flow for all levels"},
	}
	monitor := &recordingMonitor{}

	result := cascade.FilterWithMonitor(pool, &core.UserIntent{Goals: []string{"find-angels"}}, monitor)

	require.Len(t, result, 1)
	assert.Equal(t, "Evening Social", result[0].Name)
	assert.Equal(t, []string{"goal"}, monitor.lenient)
}

func TestGoalStageSkippedWhenStarved(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Pottery Workshop", Description: "hand-building with clay"},
		{Name: "Bird Watching", Description: "early walk in the park"},
	}
	monitor := &recordingMonitor{}

	result := cascade.FilterWithMonitor(pool, &core.UserIntent{Goals: []string{"find-cofounder"}}, monitor)

	assert.Len(t, result, 2)
	assert.Contains(t, monitor.skipped, "goal")
	assert.Empty(t, monitor.applied)
}

func TestIndustryStageBiasOnlyAtNormalPoolSize(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "A", IndustryTags: []string{"gaming"}},
		{Name: "B", IndustryTags: []string{"hardware"}},
		{Name: "C"},
	}

	result := cascade.Filter(pool, &core.UserIntent{Industries: []string{"fintech"}})

	assert.Len(t, result, 3)
}

func TestIndustryStageExclusionaryAboveThreshold(t *testing.T) {
	stage := &industryStage{threshold: 10}
	pool := make([]*core.Event, 0, 12)
	for i := 0; i < 12; i++ {
		tags := []string{"gaming"}
		if i%3 == 0 {
			tags = []string{"fintech"}
		}
		pool = append(pool, &core.Event{Name: fmt.Sprintf("event-%d", i), IndustryTags: tags})
	}

	result := stage.Apply(pool, &core.UserIntent{Industries: []string{"fintech"}})

	assert.Len(t, result.Pool, 4)
}

func TestBudgetStageKeepsFreeAndUnknown(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Free Meetup", Price: "Free"},
		{Name: "Paid Dinner", Price: "$50"},
		{Name: "Unlisted", Price: ""},
		{Name: "Open House", Price: "complimentary"},
	}

	result := cascade.Filter(pool, &core.UserIntent{Budget: core.BudgetFree})

	require.Len(t, result, 3)
	for _, event := range result {
		assert.NotEqual(t, "Paid Dinner", event.Name)
	}
}

func TestTimeStageDropsOppositeKeepsUnknown(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Founder Dinner", DateTime: "Tue, Oct 7, 6:00 PM"},
		{Name: "Breakfast Briefing", DateTime: "Wed, Oct 8, 8:00 AM breakfast"},
		{Name: "Demo Day", DateTime: "TBD"},
	}

	result := cascade.Filter(pool, &core.UserIntent{TimePreference: core.TimeEvening})

	require.Len(t, result, 2)
	assert.Equal(t, "Founder Dinner", result[0].Name)
	assert.Equal(t, "Demo Day", result[1].Name)
}

func TestSoftStageFloorGuard(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	// Location matches only one of five events; keeping one would fall
	// below the soft floor, so the stage is skipped.
	pool := []*core.Event{
		{Name: "A", Location: "SOMA, San Francisco"},
		{Name: "B", Location: "Marina"},
		{Name: "C", Location: "Marina"},
		{Name: "D", Location: "Marina"},
		{Name: "E", Location: "Marina"},
	}
	monitor := &recordingMonitor{}

	result := cascade.FilterWithMonitor(pool, &core.UserIntent{Location: "soma"}, monitor)

	assert.Len(t, result, 5)
	assert.Contains(t, monitor.skipped, "location")
}

func TestCascadeNeverStarvesOnSoftStages(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Pottery Workshop", Description: "hand-building with clay", Price: "$80", Location: "Oakland"},
		{Name: "Bird Watching", Description: "walk in the park", Price: "$10", Location: "Berkeley"},
	}
	intent := &core.UserIntent{
		Goals:          []string{"find-investors"},
		Industries:     []string{"fintech"},
		Location:       "soma",
		Budget:         core.BudgetFree,
		TimePreference: core.TimeEvening,
	}

	result := cascade.Filter(pool, intent)

	assert.NotEmpty(t, result)
}

func TestCascadeDeterministic(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Pitch Night", UsageTags: []string{"find-angels"}},
		{Name: "Fintech Mixer", UsageTags: []string{"networking"}, IndustryTags: []string{"fintech"}},
	}
	intent := &core.UserIntent{Goals: []string{"find-angels", "networking"}}

	first := cascade.Filter(pool, intent)
	second := cascade.Filter(pool, intent)

	assert.Equal(t, first, second)
}

func TestMonitorReceivesCallbacks(t *testing.T) {
	cascade := NewCascade(taxonomy.Default())
	pool := []*core.Event{
		{Name: "Pitch Night", UsageTags: []string{"find-angels"}},
		{Name: "Mixer", UsageTags: []string{"networking"}},
	}
	monitor := &recordingMonitor{}

	cascade.FilterWithMonitor(pool, &core.UserIntent{Goals: []string{"find-angels"}}, monitor)

	assert.Equal(t, 2, monitor.started)
	assert.Equal(t, []string{"goal"}, monitor.applied)
	assert.Equal(t, 1, monitor.final)
}
