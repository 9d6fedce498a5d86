package taxonomy

import (
	"testing"

	"github.com/poiesic/eventmatch/core"
	"github.com/stretchr/testify/assert"
)

func TestMatchGoals(t *testing.T) {
	tax := Default()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "angel investor query",
			text: "I'm a wellness founder looking for angel investors",
			want: []string{"find-angels", "find-investors"},
		},
		{
			name: "hiring query",
			text: "hiring engineers for my seed-stage startup",
			want: []string{"find-talent"},
		},
		{
			name: "no goals",
			text: "just hanging out this week",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.MatchGoals(tt.text))
		})
	}
}

func TestMatchGoals_Deterministic(t *testing.T) {
	tax := Default()
	query := "looking for angel investors and mentors while networking"

	first := tax.MatchGoals(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tax.MatchGoals(query))
	}
}

func TestMatchIndustries(t *testing.T) {
	tax := Default()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "wellness founder",
			text: "I'm a wellness founder looking for angel investors",
			want: []string{"wellness"},
		},
		{
			name: "short keyword needs word boundary",
			text: "we said hello at the fair",
			want: nil,
		},
		{
			name: "ai as a word",
			text: "building an ai startup",
			want: []string{"ai"},
		},
		{
			name: "multiple industries",
			text: "fintech meets climate tech",
			want: []string{"climate-tech", "fintech"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.MatchIndustries(tt.text))
		})
	}
}

func TestMatchesTag(t *testing.T) {
	tax := Default()

	assert.True(t, tax.MatchesTag("pitch your startup to investors", "find-investors", KindUsage))
	assert.True(t, tax.MatchesTag("an evening of networking and drinks", "networking", KindUsage))
	assert.False(t, tax.MatchesTag("a quiet pottery class", "find-investors", KindUsage))
	assert.False(t, tax.MatchesTag("anything at all", "no-such-tag", KindUsage))
}

func TestMatchesDemographic(t *testing.T) {
	tax := Default()

	assert.True(t, tax.MatchesDemographic("Women in Tech Networking Dinner"))
	assert.True(t, tax.MatchesDemographic("female founders brunch"))
	assert.False(t, tax.MatchesDemographic("general startup mixer"))
}

func TestTimeOfText(t *testing.T) {
	tax := Default()

	tests := []struct {
		name string
		text string
		want core.TimePreference
	}{
		{name: "morning keywords", text: "coffee walk and breakfast chat", want: core.TimeMorning},
		{name: "evening keywords", text: "dinner and cocktails downtown", want: core.TimeEvening},
		{name: "ambiguous text matches neither", text: "breakfast served at the evening gala", want: core.TimeNone},
		{name: "no signal", text: "startup showcase", want: core.TimeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.TimeOfText(tt.text))
		})
	}
}

func TestBudgetOfText(t *testing.T) {
	tax := Default()

	assert.Equal(t, core.BudgetFree, tax.BudgetOfText("Free to attend"))
	assert.Equal(t, core.BudgetFree, tax.BudgetOfText("$0"))
	assert.Equal(t, core.BudgetNone, tax.BudgetOfText("$25 at the door"))
}

func TestLocationOfText(t *testing.T) {
	tax := Default()

	assert.Equal(t, "soma", tax.LocationOfText("rooftop in SoMa"))
	assert.Equal(t, "palo alto", tax.LocationOfText("meet us in Palo Alto tonight"))
	assert.Equal(t, "", tax.LocationOfText("somewhere nice"))
}
