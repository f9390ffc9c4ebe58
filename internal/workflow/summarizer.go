package workflow

import (
	"context"
	"fmt"
	"strings"

	"lecturemind/internal/chunker"
	"lecturemind/internal/llm"
)

const (
	// Transcripts at or under this length are summarized in one call.
	directSummaryLimit = 4000
	// Partial summaries are regrouped in batches of this size when their
	// concatenation is still too long.
	summaryGroupSize = 3
	// Hard cap on hierarchical reduce passes. Each pass shrinks the set of
	// partials by summaryGroupSize, so real inputs finish well before this.
	maxReducePasses = 8
)

const (
	directSummaryPromptFormat = `Please provide a concise summary of the following lecture transcript:

%s

Summary:`

	partSummaryPromptFormat = `Please provide a concise summary of this part of a lecture transcript (Part %d of %d):

%s

Summary of this part:`

	groupSummaryPromptFormat = `Please combine these partial summaries into a coherent summary (Section %d):

%s

Combined Summary:`

	finalSummaryPromptFormat = `Please create a coherent, comprehensive summary from these partial summaries of a lecture:

%s

Final Summary:`
)

// Summarizer produces a summary of arbitrarily long text with a map-reduce
// strategy: long inputs are chunked at sentence boundaries, each chunk is
// summarized independently, and partial summaries are hierarchically
// combined until they fit one final pass.
type Summarizer struct {
	generator llm.Generator
	chunks    chunker.Boundary
}

// NewSummarizer creates a Summarizer using the boundary-seeking chunker with
// its summary defaults.
func NewSummarizer(generator llm.Generator) *Summarizer {
	return &Summarizer{
		generator: generator,
		chunks:    chunker.NewBoundary(chunker.SummaryChunkSize, chunker.SummaryOverlap, chunker.SummaryMinLength),
	}
}

// Summarize returns a summary of the text. Short text is summarized
// directly; longer text goes through map-reduce.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if len(text) <= directSummaryLimit {
		answer, err := s.generator.Invoke(ctx, fmt.Sprintf(directSummaryPromptFormat, text))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(answer), nil
	}

	chunks := s.chunks.Chunk(text)
	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		partial, err := s.generator.Invoke(ctx, fmt.Sprintf(partSummaryPromptFormat, i+1, len(chunks), chunk))
		if err != nil {
			return "", fmt.Errorf("failed to summarize part %d: %w", i+1, err)
		}
		partials = append(partials, strings.TrimSpace(partial))
	}

	// Reduce: regroup until the combined partials fit the final pass.
	for pass := 0; pass < maxReducePasses; pass++ {
		if len(strings.Join(partials, "\n\n")) <= directSummaryLimit || len(partials) == 1 {
			break
		}
		reduced := make([]string, 0, (len(partials)+summaryGroupSize-1)/summaryGroupSize)
		for i := 0; i < len(partials); i += summaryGroupSize {
			end := i + summaryGroupSize
			if end > len(partials) {
				end = len(partials)
			}
			group := strings.Join(partials[i:end], "\n\n")
			combined, err := s.generator.Invoke(ctx, fmt.Sprintf(groupSummaryPromptFormat, i/summaryGroupSize+1, group))
			if err != nil {
				return "", fmt.Errorf("failed to combine summaries: %w", err)
			}
			reduced = append(reduced, strings.TrimSpace(combined))
		}
		partials = reduced
	}

	final, err := s.generator.Invoke(ctx, fmt.Sprintf(finalSummaryPromptFormat, strings.Join(partials, "\n\n")))
	if err != nil {
		return "", fmt.Errorf("failed to produce final summary: %w", err)
	}
	return strings.TrimSpace(final), nil
}
