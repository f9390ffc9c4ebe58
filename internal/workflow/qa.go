package workflow

import (
	"context"
	"fmt"
	"strings"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/index"
	"lecturemind/internal/llm"
	"lecturemind/internal/storage"
	"lecturemind/internal/timestamp"
)

const (
	// Fallback transcript slicing when a lecture has no collection:
	// fixed windows of this size, taken at this stride, capped.
	fallbackWindowSize  = 1000
	fallbackStride      = 2000
	fallbackWindowLimit = 5

	// Upper bound on tokens of retrieved context packed into one prompt.
	contextTokenBudget = 6000
)

const answerPromptFormat = `Based on the following lecture transcript, please answer the user's question comprehensively.
Use the provided context to give a detailed and accurate answer.

Context:
%s

User Question: %s

Please provide a comprehensive answer based on the lecture content above:`

// QAWorkflow answers a question about a single lecture. Stages run strictly
// in order; a stage that sees a prior error passes the state through.
type QAWorkflow struct {
	transcripts storage.TranscriptStore
	retriever   Retriever
	generator   llm.Generator
	tokens      *llm.TokenCounter
}

// NewQAWorkflow creates a QAWorkflow. tokens may be nil to disable
// context-budget truncation.
func NewQAWorkflow(transcripts storage.TranscriptStore, retriever Retriever, generator llm.Generator, tokens *llm.TokenCounter) *QAWorkflow {
	return &QAWorkflow{
		transcripts: transcripts,
		retriever:   retriever,
		generator:   generator,
		tokens:      tokens,
	}
}

// Run executes LoadTranscript, RetrieveChunks, GenerateAnswer and
// ExtractSources against the initial state.
func (w *QAWorkflow) Run(ctx context.Context, lectureID, question string) QAState {
	state := QAState{
		LectureID: lectureID,
		Question:  question,
	}
	return Run(ctx, state,
		w.LoadTranscript,
		w.RetrieveChunks,
		w.GenerateAnswer,
		w.ExtractSources,
	)
}

// LoadTranscript loads the lecture's transcript into the state.
func (w *QAWorkflow) LoadTranscript(ctx context.Context, state QAState) QAState {
	transcript, err := w.transcripts.LoadTranscript(ctx, state.LectureID)
	if err != nil || transcript == "" {
		state.Error = fmt.Sprintf("Transcript not found for lecture %s", state.LectureID)
		state.Status = StatusFailed
		return state
	}
	state.Transcript = transcript
	return state
}

// RetrieveChunks fetches relevant chunks from the lecture's collection. When
// the collection is missing it degrades to slicing the raw transcript into
// fixed windows instead of failing the run.
func (w *QAWorkflow) RetrieveChunks(ctx context.Context, state QAState) QAState {
	if state.Error != "" {
		return state
	}
	if state.Question == "" {
		state.Error = "No question provided"
		state.Status = StatusFailed
		return state
	}

	if !w.retriever.Exists(ctx, state.LectureID) {
		if state.Transcript != "" {
			state.ContextChunks = sliceWindows(state.Transcript, fallbackWindowSize, fallbackStride, fallbackWindowLimit)
			state.Status = StatusDegraded
		}
		return state
	}

	results, err := w.retriever.Search(ctx, state.LectureID, state.Question, index.TopK, index.Filters{})
	if err != nil {
		state.Error = fmt.Sprintf("Error retrieving chunks: %v", err)
		state.Status = StatusFailed
		return state
	}

	chunks := make([]string, 0, len(results))
	for _, r := range results {
		chunks = append(chunks, r.Text)
	}
	state.ContextChunks = chunks
	return state
}

// GenerateAnswer sends one prompt built from the retrieved chunks (or the
// full transcript when retrieval produced nothing) and records the trimmed
// response.
func (w *QAWorkflow) GenerateAnswer(ctx context.Context, state QAState) QAState {
	if state.Error != "" {
		return state
	}
	if state.Question == "" {
		state.Error = "No question provided"
		state.Status = StatusFailed
		return state
	}

	promptContext := strings.Join(state.ContextChunks, "\n\n")
	if promptContext == "" {
		promptContext = state.Transcript
	}
	if w.tokens != nil {
		promptContext = w.tokens.Truncate(promptContext, contextTokenBudget)
	}

	answer, err := w.generator.Invoke(ctx, fmt.Sprintf(answerPromptFormat, promptContext, state.Question))
	if err != nil {
		state.Error = fmt.Sprintf("Error generating answer: %v", err)
		state.Status = StatusFailed
		return state
	}
	state.Answer = strings.TrimSpace(answer)
	return state
}

// ExtractSources maps every retrieved chunk to exactly one citation: the
// first segment matching by containment, or the empty placeholder.
func (w *QAWorkflow) ExtractSources(ctx context.Context, state QAState) QAState {
	if state.Transcript == "" {
		return state
	}

	segments := timestamp.Parse(state.Transcript)
	sources := make([]Source, 0, len(state.ContextChunks))
	for _, chunk := range state.ContextChunks {
		sources = append(sources, Cite(chunk, segments))
	}
	state.Sources = sources

	if state.Error == "" && len(sources) > 0 {
		matched := 0
		for _, s := range sources {
			if s.Text != "" {
				matched++
			}
		}
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "sources extracted",
			"lecture_id", state.LectureID, "chunks", len(sources), "matched", matched)
	}
	return state
}

// Cite resolves one chunk to a citation: the first segment matching by
// containment, or the empty placeholder. The first-match policy can pick the
// wrong segment when a phrase recurs verbatim in the transcript; that is a
// known accuracy limit of the heuristic.
func Cite(chunk string, segments []timestamp.Segment) Source {
	seg, ok := timestamp.Match(chunk, segments)
	if !ok {
		return EmptyCitation()
	}
	return Source{
		Text:           seg.Text,
		StartTime:      seg.StartTime,
		EndTime:        seg.EndTime,
		StartStr:       seg.StartStr,
		EndStr:         seg.EndStr,
		VideoTimestamp: timestamp.FormatForVideo(seg.StartTime),
	}
}

// sliceWindows cuts fixed-size rune windows out of text at the given stride.
func sliceWindows(text string, size, stride, limit int) []string {
	runes := []rune(text)
	var windows []string
	for start := 0; start < len(runes) && len(windows) < limit; start += stride {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
	}
	return windows
}
