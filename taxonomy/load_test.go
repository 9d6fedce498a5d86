package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MergesOverDefaults(t *testing.T) {
	config := `
usage_tags:
  - id: find-angels
    category: primary
    weight: 120
    description: Meet angel investors
    keywords: ["angel investors", "angels"]
  - id: demo-product
    category: specialized
    weight: 55
    description: Demo a product on stage
    keywords: ["demo day", "showcase"]
industry_tags:
  - id: spacetech
    category: emerging
    weight: 25
    description: Space technology
    keywords: ["space", "satellites", "launch"]
related:
  demo-product: [get-user-feedback]
synonyms:
  "demo my product": demo-product
`

	tax, err := Load(strings.NewReader(config))
	require.NoError(t, err)

	// Overridden definition wins.
	assert.Equal(t, 120, tax.WeightOf("find-angels", KindUsage))

	// New definitions are added alongside the defaults.
	assert.Equal(t, 55, tax.WeightOf("demo-product", KindUsage))
	assert.Equal(t, 25, tax.WeightOf("spacetech", KindIndustry))
	assert.Equal(t, 60, tax.WeightOf("networking", KindUsage))

	// New synonym and relationship entries resolve.
	tag, ok := tax.ResolveGoalPhrase("demo my product")
	assert.True(t, ok)
	assert.Equal(t, "demo-product", tag)
	assert.Contains(t, tax.RelatedTags("demo-product"), "get-user-feedback")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(strings.NewReader("usage_tags: [not: valid: yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingTagID(t *testing.T) {
	_, err := Load(strings.NewReader("usage_tags:\n  - weight: 10\n"))
	assert.Error(t, err)
}

func TestLoad_Empty(t *testing.T) {
	tax, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 100, tax.WeightOf("find-angels", KindUsage))
}
