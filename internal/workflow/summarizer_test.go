package workflow

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	llmmocks "lecturemind/internal/llm/mocks"
)

func TestSummarizer_ShortTextSingleCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := llmmocks.NewMockGenerator(ctrl)
	ctx := context.Background()

	generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "short lecture text") {
				t.Errorf("prompt missing transcript: %q", prompt)
			}
			return " the summary ", nil
		})

	s := NewSummarizer(generator)
	got, err := s.Summarize(ctx, "short lecture text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "the summary" {
		t.Errorf("Summarize() = %q", got)
	}
}

func TestSummarizer_MapReduceTermination(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := llmmocks.NewMockGenerator(ctrl)
	ctx := context.Background()

	// Every call returns a long partial so the reduce phase must regroup
	// at least once before the final pass.
	calls := 0
	generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			calls++
			if strings.Contains(prompt, "Final Summary:") {
				return "final summary", nil
			}
			return strings.Repeat("p", 900), nil
		}).
		AnyTimes()

	transcript := strings.Repeat("The lecturer explains a concept. ", 1600) // ~50k chars
	s := NewSummarizer(generator)
	got, err := s.Summarize(ctx, transcript)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "final summary" {
		t.Errorf("Summarize() = %q", got)
	}

	// ~17 chunk calls, a handful of group passes, one final call. Anything
	// wildly larger means the reduce loop is not converging.
	if calls > 40 {
		t.Errorf("Summarize() made %d backend calls", calls)
	}
}

func TestSummarizer_CombinedPartialsFitDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := llmmocks.NewMockGenerator(ctrl)
	ctx := context.Background()

	var prompts []string
	generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			prompts = append(prompts, prompt)
			if strings.Contains(prompt, "Final Summary:") {
				return "done", nil
			}
			return "tiny partial", nil
		}).
		AnyTimes()

	transcript := strings.Repeat("Sentence of lecture content here. ", 300) // ~10k chars
	s := NewSummarizer(generator)
	got, err := s.Summarize(ctx, transcript)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "done" {
		t.Errorf("Summarize() = %q", got)
	}

	// Small partials skip the group passes entirely
	for _, p := range prompts {
		if strings.Contains(p, "Combined Summary:") {
			t.Errorf("unexpected group pass for small partials")
		}
	}
}
