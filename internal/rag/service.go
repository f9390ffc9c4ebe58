// Package rag is the caller-facing surface of the retrieval pipeline. It
// wraps the staged workflows with simpler direct fallback paths so every
// entry point returns a well-formed result.
package rag

import (
	"context"
	"fmt"
	"strings"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/index"
	"lecturemind/internal/llm"
	"lecturemind/internal/storage"
	"lecturemind/internal/timestamp"
	"lecturemind/internal/workflow"
)

// Retrieval width for the direct (non-workflow) QA path.
const directAskK = 5

// MissingTranscriptAnswer is returned when a lecture has no stored
// transcript on the direct QA path.
const MissingTranscriptAnswer = "Transcript not found for this lecture."

const directAskPromptFormat = `Based on the following lecture transcript, please answer the user's question comprehensively.
Use the full transcript context to provide a detailed and accurate answer.

Lecture Transcript:
%s

User Question: %s

Please provide a comprehensive answer based on the lecture content above:`

// Service answers questions, searches, and summarizes lectures.
type Service struct {
	transcripts storage.TranscriptStore
	lectures    storage.LectureStore
	retriever   workflow.Retriever
	generator   llm.Generator
	qa          *workflow.QAWorkflow
	search      *workflow.SearchWorkflow
	summary     *workflow.SummaryWorkflow
	summarizer  *workflow.Summarizer
}

// NewService creates a Service.
func NewService(
	transcripts storage.TranscriptStore,
	lectures storage.LectureStore,
	retriever workflow.Retriever,
	generator llm.Generator,
	qa *workflow.QAWorkflow,
	search *workflow.SearchWorkflow,
	summary *workflow.SummaryWorkflow,
	summarizer *workflow.Summarizer,
) *Service {
	return &Service{
		transcripts: transcripts,
		lectures:    lectures,
		retriever:   retriever,
		generator:   generator,
		qa:          qa,
		search:      search,
		summary:     summary,
		summarizer:  summarizer,
	}
}

// Ask answers a question about one lecture. It attempts the staged QA
// workflow first and falls back to a direct retrieval-and-generate path on
// any workflow-reported error. The response is always well-formed; nothing
// is raised past this boundary.
func (s *Service) Ask(ctx context.Context, lectureID, question string) AnswerResponse {
	logger := contextutil.LoggerFromContext(ctx)

	state := s.qa.Run(ctx, lectureID, question)
	if state.Error == "" {
		sources := state.Sources
		if sources == nil {
			sources = []workflow.Source{}
		}
		return AnswerResponse{Answer: state.Answer, Sources: sources}
	}

	logger.WarnContext(ctx, "QA workflow failed, using direct path",
		"lecture_id", lectureID, "error", state.Error)
	return s.askDirect(ctx, lectureID, question)
}

// askDirect is the non-workflow QA path: retrieve (or slice the transcript
// when retrieval fails), prompt with the full transcript, cite every chunk.
func (s *Service) askDirect(ctx context.Context, lectureID, question string) AnswerResponse {
	transcript, err := s.transcripts.LoadTranscript(ctx, lectureID)
	if err != nil || transcript == "" {
		return AnswerResponse{Answer: MissingTranscriptAnswer, Sources: []workflow.Source{}}
	}

	var chunks []string
	results, err := s.retriever.Search(ctx, lectureID, question, directAskK, index.Filters{})
	if err != nil {
		chunks = transcriptWindows(transcript)
	} else {
		for _, r := range results {
			chunks = append(chunks, r.Text)
		}
	}

	answer, err := s.generator.Invoke(ctx, fmt.Sprintf(directAskPromptFormat, transcript, question))
	if err != nil {
		answer = fmt.Sprintf("Error generating answer: %v", err)
	}

	segments := timestamp.Parse(transcript)
	sources := make([]workflow.Source, 0, len(chunks))
	for _, chunk := range chunks {
		sources = append(sources, workflow.Cite(chunk, segments))
	}

	return AnswerResponse{Answer: strings.TrimSpace(answer), Sources: sources}
}

// Search runs the multi-lecture search workflow. Callers must pass only
// lecture ids the requesting user owns.
func (s *Service) Search(ctx context.Context, query string, lectureIDs []string) SearchResponse {
	state := s.search.Run(ctx, query, lectureIDs)
	results := state.Results
	if results == nil {
		results = []workflow.SearchResult{}
	}
	return SearchResponse{
		ConsolidatedAnswer: state.ConsolidatedAnswer,
		Results:            results,
		Error:              state.Error,
	}
}

// Summarize produces a lecture summary with a three-step fallback chain:
// the full summarization workflow, then the stored summary, then direct
// regeneration from the transcript (stored for next time). It returns an
// error only when every step is impossible (no transcript at all).
func (s *Service) Summarize(ctx context.Context, lectureID string) (SummaryResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	state := s.summary.Run(ctx, lectureID)
	if state.Error == "" && state.Summary != "" {
		s.storeSummary(ctx, lectureID, state.Summary)
		return SummaryResponse{
			Summary:    state.Summary,
			KeyTopics:  state.KeyTopics,
			KeyMoments: state.KeyMoments,
		}, nil
	}
	logger.WarnContext(ctx, "summarization workflow failed, falling back",
		"lecture_id", lectureID, "error", state.Error)

	if lecture, err := s.lectures.GetByID(ctx, lectureID); err == nil && lecture.Summary != "" {
		return SummaryResponse{Summary: lecture.Summary}, nil
	}

	transcript, err := s.transcripts.LoadTranscript(ctx, lectureID)
	if err != nil || transcript == "" {
		return SummaryResponse{}, fmt.Errorf("transcript for lecture %s: %w", lectureID, storage.ErrNotFound)
	}
	summary, err := s.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("failed to summarize lecture %s: %w", lectureID, err)
	}
	s.storeSummary(ctx, lectureID, summary)
	return SummaryResponse{Summary: summary}, nil
}

// storeSummary caches a summary on the lecture record. Failures only log;
// the summary is still returned to the caller.
func (s *Service) storeSummary(ctx context.Context, lectureID, summary string) {
	if err := s.lectures.UpdateSummary(ctx, lectureID, summary); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to store summary",
			"lecture_id", lectureID, "error", err)
	}
}

// transcriptWindows is the retrieval fallback for the direct path: fixed
// windows of the raw transcript.
func transcriptWindows(transcript string) []string {
	runes := []rune(transcript)
	var windows []string
	for start := 0; start < len(runes) && len(windows) < 5; start += 2000 {
		end := start + 1000
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
	}
	return windows
}
