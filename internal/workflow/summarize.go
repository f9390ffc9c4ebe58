package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/llm"
	"lecturemind/internal/storage"
	"lecturemind/internal/timestamp"
)

// Roughly every Nth parsed segment is sampled for the key-moment prompt.
const momentSampleCount = 20

const keyTopicsPromptFormat = `Based on the following lecture transcript, extract the main topics and key concepts discussed.
Return them as a comma-separated list.

Transcript:
%s

Key topics:`

const keyMomentsPromptFormat = `Based on these lecture segments, identify the most important moments that would be valuable for quick navigation.
Look for topic introductions, key definitions, important examples, or conclusions.

Segments:
%s

Return the important timestamps as a JSON array with format: [{"timestamp": "MM:SS", "description": "Description"}]`

// SummaryWorkflow produces a summary, key topics, and key moments for one
// lecture. After the transcript loads, the three stages are independent:
// each reads only the transcript and writes its own output field, so they
// run concurrently.
type SummaryWorkflow struct {
	transcripts storage.TranscriptStore
	generator   llm.Generator
	summarizer  *Summarizer
}

// NewSummaryWorkflow creates a SummaryWorkflow.
func NewSummaryWorkflow(transcripts storage.TranscriptStore, generator llm.Generator, summarizer *Summarizer) *SummaryWorkflow {
	return &SummaryWorkflow{
		transcripts: transcripts,
		generator:   generator,
		summarizer:  summarizer,
	}
}

// Run loads the transcript and fans out the three extraction stages. A
// failed stage degrades the result instead of aborting the others.
func (w *SummaryWorkflow) Run(ctx context.Context, lectureID string) SummaryState {
	state := Run(ctx, SummaryState{LectureID: lectureID}, w.LoadTranscript)
	if state.Error != "" {
		return state
	}

	var (
		wg         sync.WaitGroup
		summary    string
		summaryErr error
		topics     []string
		topicsErr  error
		moments    []KeyMoment
		momentsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, summaryErr = w.summarizer.Summarize(ctx, state.Transcript)
	}()
	go func() {
		defer wg.Done()
		topics, topicsErr = w.extractKeyTopics(ctx, state.Transcript)
	}()
	go func() {
		defer wg.Done()
		moments, momentsErr = w.extractKeyMoments(ctx, state.Transcript)
	}()
	wg.Wait()

	state.Summary = summary
	state.KeyTopics = topics
	state.KeyMoments = moments

	logger := contextutil.LoggerFromContext(ctx)
	for _, stageErr := range []struct {
		stage string
		err   error
	}{
		{"generate_summary", summaryErr},
		{"extract_topics", topicsErr},
		{"extract_timestamps", momentsErr},
	} {
		if stageErr.err == nil {
			continue
		}
		logger.WarnContext(ctx, "summarization stage failed",
			"lecture_id", lectureID, "stage", stageErr.stage, "error", stageErr.err)
		state.Status = StatusDegraded
		if state.Error == "" {
			state.Error = fmt.Sprintf("Error in %s: %v", stageErr.stage, stageErr.err)
		}
	}
	if summaryErr != nil && topicsErr != nil && momentsErr != nil {
		state.Status = StatusFailed
	}
	return state
}

// LoadTranscript loads the lecture's transcript into the state.
func (w *SummaryWorkflow) LoadTranscript(ctx context.Context, state SummaryState) SummaryState {
	transcript, err := w.transcripts.LoadTranscript(ctx, state.LectureID)
	if err != nil || transcript == "" {
		state.Error = fmt.Sprintf("Transcript not found for lecture %s", state.LectureID)
		state.Status = StatusFailed
		return state
	}
	state.Transcript = transcript
	return state
}

// extractKeyTopics asks for a comma-separated topic list and splits it.
func (w *SummaryWorkflow) extractKeyTopics(ctx context.Context, transcript string) ([]string, error) {
	response, err := w.generator.Invoke(ctx, fmt.Sprintf(keyTopicsPromptFormat, transcript))
	if err != nil {
		return nil, err
	}
	parts := strings.Split(response, ",")
	topics := make([]string, 0, len(parts))
	for _, part := range parts {
		if topic := strings.TrimSpace(part); topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}

// extractKeyMoments samples the parsed segments, asks the backend to pick
// salient moments, and parses the response as JSON. Unparsable output
// degrades to an empty list.
func (w *SummaryWorkflow) extractKeyMoments(ctx context.Context, transcript string) ([]KeyMoment, error) {
	segments := timestamp.Parse(transcript)
	if len(segments) == 0 {
		return []KeyMoment{}, nil
	}

	stride := len(segments) / momentSampleCount
	if stride < 1 {
		stride = 1
	}

	var lines []string
	for i := 0; i < len(segments); i += stride {
		seg := segments[i]
		lines = append(lines, fmt.Sprintf("%s: %s...", seg.StartStr, truncateRunes(seg.Text, 200)))
	}

	response, err := w.generator.Invoke(ctx, fmt.Sprintf(keyMomentsPromptFormat, strings.Join(lines, "\n")))
	if err != nil {
		return nil, err
	}

	var moments []KeyMoment
	if err := json.Unmarshal([]byte(extractJSONArray(response)), &moments); err != nil {
		return []KeyMoment{}, nil
	}
	return moments, nil
}

// extractJSONArray isolates the first JSON array in a response, tolerating
// surrounding prose and markdown fences.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
