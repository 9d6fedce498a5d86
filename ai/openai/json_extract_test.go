package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "preamble and trailing text",
			in:   "Sure, here you go:\n{\"a\": 1}\nHope that helps!",
			want: `{"a": 1}`,
		},
		{
			name: "nested objects",
			in:   `{"a": {"b": [1, 2]}} extra`,
			want: `{"a": {"b": [1, 2]}}`,
		},
		{
			name: "braces inside strings",
			in:   `{"a": "curly } brace {"}`,
			want: `{"a": "curly } brace {"}`,
		},
		{
			name: "escaped quotes inside strings",
			in:   `{"a": "quote \" and } brace"}`,
			want: `{"a": "quote \" and } brace"}`,
		},
		{
			name: "no object",
			in:   "no json here",
			want: "",
		},
		{
			name: "unbalanced object",
			in:   `{"a": 1`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstJSONObject(tt.in))
		})
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "plain fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "no fence",
			in:   "  {\"a\": 1}  ",
			want: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanResponse(tt.in))
		})
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "missing opening quote on key",
			in:   `{index": 1, justification": "good fit"}`,
			want: `{"index": 1, "justification": "good fit"}`,
		},
		{
			name: "well-formed input unchanged",
			in:   `{"index": 1}`,
			want: `{"index": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.in))
		})
	}
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))
	long := excerpt("a long description about startup networking events in the city", 30)
	assert.LessOrEqual(t, len(long), 34)
	assert.Contains(t, long, "...")
}
