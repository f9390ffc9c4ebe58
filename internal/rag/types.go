package rag

import "lecturemind/internal/workflow"

// AnswerResponse is the result of a single-lecture question. It is always
// well-formed: a failed run carries an explanatory answer and no sources.
type AnswerResponse struct {
	Answer  string            `json:"answer"`
	Sources []workflow.Source `json:"sources"`
}

// SearchResponse is the result of a multi-lecture search.
type SearchResponse struct {
	ConsolidatedAnswer string                  `json:"consolidated_answer"`
	Results            []workflow.SearchResult `json:"results"`
	Error              string                  `json:"error,omitempty"`
}

// SummaryResponse is the result of summarizing one lecture. KeyTopics and
// KeyMoments are only present when the full workflow produced them; a
// cached or regenerated summary carries the summary text alone.
type SummaryResponse struct {
	Summary    string               `json:"summary"`
	KeyTopics  []string             `json:"key_topics,omitempty"`
	KeyMoments []workflow.KeyMoment `json:"important_timestamps,omitempty"`
}
