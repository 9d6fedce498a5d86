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


package taxonomy

// Usage tag categories.
const (
	CategoryPrimary     = "primary"
	CategorySecondary   = "secondary"
	CategorySpecialized = "specialized"
)

// Industry tag tiers.
const (
	TierCore     = "core"
	TierSector   = "sector"
	TierEmerging = "emerging"
)

var defaultUsageTags = []Definition{
	{
		ID:          "find-cofounder",
		Category:    CategoryPrimary,
		Weight:      90,
		Description: "Meet potential co-founders, partners, or collaborators",
		Keywords:    []string{"cofounder", "co-founder", "founding partner", "startup partner", "collaborator"},
	},
	{
		ID:          "find-angels",
		Category:    CategoryPrimary,
		Weight:      100,
		Description: "Meet angel investors or early-stage investors",
		Keywords:    []string{"angel investor", "angel investors", "angels", "early-stage investor", "seed investor", "seed round"},
	},
	{
		ID:          "find-investors",
		Category:    CategoryPrimary,
		Weight:      100,
		Description: "Meet VCs, institutional investors, or funding sources",
		Keywords:    []string{"investor", "investors", "vc", "vcs", "venture capital", "fundraising", "raise funding", "raising a round", "pitch"},
	},
	{
		ID:          "find-advisors",
		Category:    CategorySecondary,
		Weight:      70,
		Description: "Meet advisors, mentors, or industry experts",
		Keywords:    []string{"advisor", "advisors", "mentor", "mentors", "mentorship", "industry expert"},
	},
	{
		ID:          "find-users",
		Category:    CategorySecondary,
		Weight:      70,
		Description: "Meet potential users, customers, or beta testers",
		Keywords:    []string{"customer", "customers", "users", "beta tester", "beta testers", "early adopters"},
	},
	{
		ID:          "get-user-feedback",
		Category:    CategorySpecialized,
		Weight:      60,
		Description: "Get feedback on a product or idea",
		Keywords:    []string{"feedback", "validate", "validation", "user testing", "product demo"},
	},
	{
		ID:          "find-talent",
		Category:    CategoryPrimary,
		Weight:      90,
		Description: "Meet potential employees, contractors, or team members",
		Keywords:    []string{"hiring", "recruit", "recruiting", "talent", "engineers", "team members", "join my team"},
	},
	{
		ID:          "learn-skills",
		Category:    CategorySecondary,
		Weight:      50,
		Description: "Learning, workshops, or skill development",
		Keywords:    []string{"learn", "learning", "workshop", "workshops", "training", "masterclass", "bootcamp", "hands-on"},
	},
	{
		ID:          "industry-insights",
		Category:    CategorySecondary,
		Weight:      50,
		Description: "Staying updated on industry trends and insights",
		Keywords:    []string{"trends", "insights", "panel", "fireside chat", "state of", "market opportunities"},
	},
	{
		ID:          "networking",
		Category:    CategorySecondary,
		Weight:      60,
		Description: "General networking for building professional relationships",
		Keywords:    []string{"networking", "network", "meet people", "mixer", "happy hour", "connections", "meetup"},
	},
}

var defaultIndustryTags = []Definition{
	{
		ID:          "ai",
		Category:    TierCore,
		Weight:      40,
		Description: "Artificial intelligence and machine learning",
		Keywords:    []string{"ai", "artificial intelligence", "machine learning", "ml", "llm", "genai"},
	},
	{
		ID:          "fintech",
		Category:    TierCore,
		Weight:      35,
		Description: "Financial technology",
		Keywords:    []string{"fintech", "payments", "banking", "finance"},
	},
	{
		ID:          "healthtech",
		Category:    TierCore,
		Weight:      35,
		Description: "Health technology and digital health",
		Keywords:    []string{"healthtech", "health tech", "digital health", "healthcare", "medtech"},
	},
	{
		ID:          "wellness",
		Category:    TierSector,
		Weight:      30,
		Description: "Wellness, fitness, and consumer health",
		Keywords:    []string{"wellness", "fitness", "mental health", "wellbeing"},
	},
	{
		ID:          "climate-tech",
		Category:    TierCore,
		Weight:      30,
		Description: "Climate and sustainability technology",
		Keywords:    []string{"climate", "climate tech", "sustainability", "clean energy", "carbon"},
	},
	{
		ID:          "biotech",
		Category:    TierCore,
		Weight:      30,
		Description: "Biotechnology and life sciences",
		Keywords:    []string{"biotech", "life sciences", "genomics", "pharma"},
	},
	{
		ID:          "cybersecurity",
		Category:    TierCore,
		Weight:      30,
		Description: "Security and privacy technology",
		Keywords:    []string{"cybersecurity", "security", "privacy", "infosec"},
	},
	{
		ID:          "edtech",
		Category:    TierSector,
		Weight:      25,
		Description: "Education technology",
		Keywords:    []string{"edtech", "education", "learning platforms"},
	},
	{
		ID:          "web3",
		Category:    TierEmerging,
		Weight:      25,
		Description: "Web3, blockchain, and crypto",
		Keywords:    []string{"web3", "blockchain", "crypto", "defi", "nft"},
	},
	{
		ID:          "robotics",
		Category:    TierEmerging,
		Weight:      25,
		Description: "Robotics and automation",
		Keywords:    []string{"robotics", "robots", "automation", "drones"},
	},
	{
		ID:          "fashion-tech",
		Category:    TierEmerging,
		Weight:      25,
		Description: "Fashion and retail technology",
		Keywords:    []string{"fashion", "fashion tech", "fashion-tech", "apparel", "retail tech"},
	},
	{
		ID:          "venture-capital",
		Category:    TierSector,
		Weight:      25,
		Description: "Venture capital and investing",
		Keywords:    []string{"venture capital", "venture", "investing", "fund"},
	},
	{
		ID:          "saas",
		Category:    TierSector,
		Weight:      20,
		Description: "Software as a service",
		Keywords:    []string{"saas", "software", "cloud"},
	},
	{
		ID:          "ecommerce",
		Category:    TierSector,
		Weight:      20,
		Description: "E-commerce and marketplaces",
		Keywords:    []string{"ecommerce", "e-commerce", "marketplace", "dtc"},
	},
	{
		ID:          "gaming",
		Category:    TierSector,
		Weight:      20,
		Description: "Gaming and interactive entertainment",
		Keywords:    []string{"gaming", "games", "esports"},
	},
	{
		ID:          "hardware",
		Category:    TierSector,
		Weight:      20,
		Description: "Hardware and devices",
		Keywords:    []string{"hardware", "devices", "semiconductors", "chips"},
	},
	{
		ID:          "enterprise",
		Category:    TierSector,
		Weight:      20,
		Description: "Enterprise software and B2B",
		Keywords:    []string{"enterprise", "b2b"},
	},
	{
		ID:          "consumer",
		Category:    TierEmerging,
		Weight:      15,
		Description: "Consumer products and B2C",
		Keywords:    []string{"consumer", "b2c"},
	},
}

// defaultRelatedTags is the complementary-tag graph, used for
// suggestion and bonus purposes only.
var defaultRelatedTags = map[string][]string{
	"find-angels":       {"find-investors", "networking"},
	"find-investors":    {"find-angels", "networking"},
	"find-cofounder":    {"networking", "find-talent"},
	"find-talent":       {"networking", "find-cofounder"},
	"find-advisors":     {"industry-insights", "networking"},
	"find-users":        {"get-user-feedback"},
	"get-user-feedback": {"find-users"},
	"learn-skills":      {"industry-insights"},
	"industry-insights": {"learn-skills"},
	"networking":        {"find-cofounder", "find-angels"},
}

// defaultGoalSynonyms maps free-text goal phrases, as extracted from a
// query, to canonical usage-tag identifiers.
var defaultGoalSynonyms = map[string]string{
	"angel investors":    "find-angels",
	"angels":             "find-angels",
	"angel funding":      "find-angels",
	"seed funding":       "find-angels",
	"investors":          "find-investors",
	"vcs":                "find-investors",
	"venture capital":    "find-investors",
	"fundraising":        "find-investors",
	"raise funding":      "find-investors",
	"raising a round":    "find-investors",
	"cofounder":          "find-cofounder",
	"co-founder":         "find-cofounder",
	"cofounders":         "find-cofounder",
	"founding partner":   "find-cofounder",
	"advisors":           "find-advisors",
	"mentors":            "find-advisors",
	"mentorship":         "find-advisors",
	"hiring":             "find-talent",
	"hiring engineers":   "find-talent",
	"recruiting":         "find-talent",
	"talent":             "find-talent",
	"customers":          "find-users",
	"users":              "find-users",
	"beta testers":       "find-users",
	"user feedback":      "get-user-feedback",
	"feedback":           "get-user-feedback",
	"product validation": "get-user-feedback",
	"learning":           "learn-skills",
	"workshops":          "learn-skills",
	"upskilling":         "learn-skills",
	"industry trends":    "industry-insights",
	"market insights":    "industry-insights",
	"networking":         "networking",
	"meet people":        "networking",
	"connections":        "networking",
}

// Phrase sets shared by the deterministic intent extractor and the
// soft filter stages.
var (
	defaultDemographicPhrases = []string{
		"women", "woman", "female", "women-focused", "women in tech",
	}

	defaultMorningPhrases = []string{
		"morning", "breakfast", "coffee", "sunrise", "brunch", "run club",
	}

	defaultEveningPhrases = []string{
		"evening", "dinner", "night", "happy hour", "cocktail", "afterparty", "gala",
	}

	defaultFreePhrases = []string{
		"free", "no cost", "complimentary", "$0",
	}

	defaultLocationMarkers = []string{
		"soma", "mission", "downtown", "marina", "fidi", "embarcadero",
		"palo alto", "mountain view", "oakland", "berkeley", "south bay",
	}
)
