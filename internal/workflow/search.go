package workflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/index"
	"lecturemind/internal/llm"
	"lecturemind/internal/storage"
	"lecturemind/internal/timestamp"
)

const (
	// Pooled results are truncated to this many entries after ranking.
	searchResultCap = 20
	// Only the best results feed the consolidation prompt.
	consolidationLimit = 10
)

// NoResultsAnswer is returned without calling the generation backend when
// no lecture produced any hits.
const NoResultsAnswer = "No relevant information found across the lectures."

const consolidatePromptFormat = `Based on the following search results from multiple lectures, provide a comprehensive answer to the user's query.

Query: %s

Search Results:
%s

Please provide a consolidated answer that synthesizes information from all relevant lectures:`

// SearchWorkflow searches a set of lectures and consolidates the hits into
// one answer. Ownership of the lecture ids must be verified by the caller.
type SearchWorkflow struct {
	transcripts storage.TranscriptStore
	retriever   Retriever
	generator   llm.Generator
}

// NewSearchWorkflow creates a SearchWorkflow.
func NewSearchWorkflow(transcripts storage.TranscriptStore, retriever Retriever, generator llm.Generator) *SearchWorkflow {
	return &SearchWorkflow{
		transcripts: transcripts,
		retriever:   retriever,
		generator:   generator,
	}
}

// Run executes SearchAllLectures then ConsolidateAnswer.
func (w *SearchWorkflow) Run(ctx context.Context, query string, lectureIDs []string) SearchState {
	state := SearchState{
		Query:      query,
		LectureIDs: lectureIDs,
	}
	return Run(ctx, state,
		w.SearchAllLectures,
		w.ConsolidateAnswer,
	)
}

// SearchAllLectures pools the top hits from every searchable lecture.
// Lectures without a collection are skipped. The pool is sorted by
// descending score when any hit carries one, then capped.
func (w *SearchWorkflow) SearchAllLectures(ctx context.Context, state SearchState) SearchState {
	var pool []SearchResult
	for _, lectureID := range state.LectureIDs {
		pool = append(pool, w.searchLecture(ctx, state.Query, lectureID)...)
	}

	scored := false
	for _, r := range pool {
		if r.Scored {
			scored = true
			break
		}
	}
	if scored {
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Score > pool[j].Score
		})
	}
	if len(pool) > searchResultCap {
		pool = pool[:searchResultCap]
	}
	state.Results = pool
	return state
}

// searchLecture returns the joined hits for one lecture, or nothing when the
// lecture cannot be searched. Per-lecture failures never fail the run.
func (w *SearchWorkflow) searchLecture(ctx context.Context, query, lectureID string) []SearchResult {
	logger := contextutil.LoggerFromContext(ctx)

	if !w.retriever.Exists(ctx, lectureID) {
		return nil
	}

	hits, err := w.retriever.Search(ctx, lectureID, query, index.TopK, index.Filters{})
	if err != nil {
		logger.WarnContext(ctx, "lecture search failed", "lecture_id", lectureID, "error", err)
		return nil
	}

	// Segments may be unavailable; hits still count, with empty citations.
	var segments []timestamp.Segment
	transcript, err := w.transcripts.LoadTranscript(ctx, lectureID)
	if err == nil {
		segments = timestamp.Parse(transcript)
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		citation := Cite(hit.Text, segments)
		results = append(results, SearchResult{
			LectureID:      lectureID,
			Text:           hit.Text,
			StartTime:      citation.StartTime,
			EndTime:        citation.EndTime,
			StartStr:       citation.StartStr,
			EndStr:         citation.EndStr,
			VideoTimestamp: citation.VideoTimestamp,
			Score:          hit.Score,
			Scored:         true,
		})
	}
	return results
}

// ConsolidateAnswer synthesizes one answer from the best pooled results.
// With zero results it short-circuits to a fixed message without calling
// the generation backend.
func (w *SearchWorkflow) ConsolidateAnswer(ctx context.Context, state SearchState) SearchState {
	if state.Error != "" {
		return state
	}
	if len(state.Results) == 0 {
		state.ConsolidatedAnswer = NoResultsAnswer
		return state
	}

	top := state.Results
	if len(top) > consolidationLimit {
		top = top[:consolidationLimit]
	}

	labeled := make([]string, len(top))
	for i, result := range top {
		labeled[i] = fmt.Sprintf("Lecture %s (%s): %s", result.LectureID, result.VideoTimestamp, result.Text)
	}

	answer, err := w.generator.Invoke(ctx, fmt.Sprintf(consolidatePromptFormat, state.Query, strings.Join(labeled, "\n\n")))
	if err != nil {
		state.Error = fmt.Sprintf("Error consolidating answer: %v", err)
		state.Status = StatusFailed
		return state
	}
	state.ConsolidatedAnswer = strings.TrimSpace(answer)
	return state
}
