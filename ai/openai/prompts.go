package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/eventmatch/ai"
)

const intentResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "women_focused": {"type": "boolean"},
    "goal_phrases": {"type": "array", "items": {"type": "string"}},
    "industry_phrases": {"type": "array", "items": {"type": "string"}},
    "location": {"type": "string"},
    "time_of_day": {"type": "string", "enum": ["morning", "evening", ""]},
    "budget": {"type": "string", "enum": ["free", "paid", ""]},
    "primary_criteria": {"type": "array", "items": {"type": "string"}},
    "secondary_criteria": {"type": "array", "items": {"type": "string"}},
    "rationale": {"type": "string"}
  },
  "required": ["women_focused", "goal_phrases", "industry_phrases"],
  "additionalProperties": false
}`

const intentPromptTemplate = `You interpret what a user wants out of attending tech events. Extract their
intent from the query and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

The known usage tags (what a user can do at an event) are:
%s

The known industry tags (an event's domain focus) are:
%s

Rules:
- goal_phrases: short phrases naming what the user wants to achieve. Prefer wording that matches a
  listed usage tag or its description; include a phrase even when unsure.
- industry_phrases: the user's domains of interest. Prefer listed industry tag identifiers.
- women_focused: true only if the user explicitly asks for women-focused events.
- time_of_day: "morning" or "evening" only when the user states a time preference, otherwise "".
- budget: "free" only when the user asks for free events, "paid" when price is explicitly fine, otherwise "".
- primary_criteria / secondary_criteria: the most and second-most important things to match, in the
  user's own terms. rationale: one sentence on how you read the query.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "I'm a wellness founder looking for angel investors"
Output:
{
  "women_focused": false,
  "goal_phrases": ["angel investors"],
  "industry_phrases": ["wellness"],
  "location": "",
  "time_of_day": "",
  "budget": "",
  "primary_criteria": ["meeting angel investors"],
  "secondary_criteria": ["wellness industry events"],
  "rationale": "The user is fundraising at an early stage in the wellness space."
}`

// buildIntentPrompt creates the intent extraction system prompt with the
// tag catalogue embedded as instructions.
func buildIntentPrompt(catalogue ai.TagCatalogue) string {
	return fmt.Sprintf(intentPromptTemplate,
		intentResponseSchema,
		formatCatalogue(catalogue.UsageTags),
		formatCatalogue(catalogue.IndustryTags))
}

func formatCatalogue(tags []ai.TagDescription) string {
	var b strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&b, "- %s: %s\n", tag.ID, tag.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

const rankResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "selections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "index": {"type": "integer", "minimum": 0},
          "justification": {"type": "string"}
        },
        "required": ["index", "justification"],
        "additionalProperties": false
      }
    },
    "rationale": {"type": "string"}
  },
  "required": ["selections"],
  "additionalProperties": false
}`

const rankPromptTemplate = `You pick the best events for a user from a pre-scored candidate list and justify
each pick in one or two sentences addressed to the user.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Select exactly %d candidates by their "index" field, best first.
- Prioritize events that serve the user's stated goals AND their industry; goal match outweighs
  industry match; time-of-day and audience fit are tie-breaks only.
- Each justification must reference something concrete about the event (what it is for, who attends,
  when it happens). Never invent details that are not in the candidate summary.
- rationale: one sentence summarizing the overall selection.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildRankPrompt creates the ranking system prompt.
func buildRankPrompt(topK int) string {
	return fmt.Sprintf(rankPromptTemplate, rankResponseSchema, topK)
}

// buildRankInput renders the user message for a ranking request: the query,
// the intent summary, and the candidate window.
func buildRankInput(req *ai.RankRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Query: %s\n", req.Query)
	if len(req.Goals) > 0 {
		fmt.Fprintf(&b, "Goals: %s\n", strings.Join(req.Goals, ", "))
	}
	if len(req.Industries) > 0 {
		fmt.Fprintf(&b, "Industries: %s\n", strings.Join(req.Industries, ", "))
	}
	if req.TimeOfDay != "" {
		fmt.Fprintf(&b, "Preferred time of day: %s\n", req.TimeOfDay)
	}
	if req.WomenFocused {
		b.WriteString("The user asked for women-focused events.\n")
	}

	b.WriteString("\nCandidates:\n")
	for _, c := range req.Candidates {
		fmt.Fprintf(&b, "[%d] %s", c.Index, c.Name)
		if c.DateTime != "" {
			fmt.Fprintf(&b, " | %s", c.DateTime)
		}
		if c.Location != "" {
			fmt.Fprintf(&b, " | %s", c.Location)
		}
		if c.Price != "" {
			fmt.Fprintf(&b, " | %s", c.Price)
		}
		b.WriteByte('\n')
		if len(c.UsageTags) > 0 {
			fmt.Fprintf(&b, "    usage: %s\n", strings.Join(c.UsageTags, ", "))
		}
		if len(c.IndustryTags) > 0 {
			fmt.Fprintf(&b, "    industry: %s\n", strings.Join(c.IndustryTags, ", "))
		}
		if c.Excerpt != "" {
			fmt.Fprintf(&b, "    %s\n", c.Excerpt)
		}
	}
	return b.String()
}

const tagResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "event_tags": {"type": "array", "items": {"type": "string"}},
    "usage_tags": {"type": "array", "items": {"type": "string"}},
    "industry_tags": {"type": "array", "items": {"type": "string"}},
    "event_type": {"type": "string"},
    "women_specific": {"type": "boolean"},
    "invite_only": {"type": "boolean"}
  },
  "required": ["event_tags", "usage_tags", "industry_tags"],
  "additionalProperties": false
}`

const tagPromptTemplate = `You categorize tech events. Analyze the event and return a JSON object with all
requested categorizations.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- usage_tags: what the event can be used for. Use ONLY these identifiers: %s.
  Be generous - if an event could be used for multiple purposes, include all relevant ones.
- industry_tags: all industries and sectors the event touches. Prefer these identifiers: %s.
  Add others in lowercase hyphenated form when clearly relevant.
- event_tags: 3-8 free-form descriptive tags (audience, format, vibe) in lowercase hyphenated form.
- event_type: the single primary type - networking, panel, workshop, hackathon, demo-day, dinner,
  conference, meetup, pitch, social, or other.
- women_specific: true only if the event targets women specifically.
- invite_only: true only if attendance requires an invitation or is described as exclusive.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildTagPrompt creates the event tagging system prompt with the
// canonical tag vocabularies embedded.
func buildTagPrompt(catalogue ai.TagCatalogue) string {
	return fmt.Sprintf(tagPromptTemplate,
		tagResponseSchema,
		joinIDs(catalogue.UsageTags),
		joinIDs(catalogue.IndustryTags))
}

func joinIDs(tags []ai.TagDescription) string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return strings.Join(ids, ", ")
}
