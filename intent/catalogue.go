package intent

import (
	"github.com/poiesic/eventmatch/ai"
	"github.com/poiesic/eventmatch/taxonomy"
)

// BuildCatalogue projects the taxonomy's tag vocabulary into the shape
// the AI services embed in their prompts. Order follows the taxonomy's
// sorted tag lists so prompts are stable across runs.
func BuildCatalogue(tax *taxonomy.Taxonomy) ai.TagCatalogue {
	return ai.TagCatalogue{
		UsageTags:    describeTags(tax, taxonomy.KindUsage),
		IndustryTags: describeTags(tax, taxonomy.KindIndustry),
	}
}

func describeTags(tax *taxonomy.Taxonomy, kind taxonomy.Kind) []ai.TagDescription {
	ids := tax.AllTags(kind)
	described := make([]ai.TagDescription, 0, len(ids))
	for _, id := range ids {
		def, _ := tax.Definition(id, kind)
		described = append(described, ai.TagDescription{
			ID:          id,
			Description: def.Description,
		})
	}
	return described
}
