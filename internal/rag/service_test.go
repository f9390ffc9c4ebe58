package rag

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/mock/gomock"

	"lecturemind/internal/index"
	llmmocks "lecturemind/internal/llm/mocks"
	"lecturemind/internal/storage"
	storagemocks "lecturemind/internal/storage/mocks"
	"lecturemind/internal/workflow"
	wfmocks "lecturemind/internal/workflow/mocks"
)

const testTranscript = "[00:00:01.00 - 00:00:02.50] Entropy measures disorder in a system.\n" +
	"[00:00:02.50 - 00:00:04.00] The second law states entropy never decreases.\n"

type serviceDeps struct {
	transcripts *storagemocks.MockTranscriptStore
	lectures    *storagemocks.MockLectureStore
	retriever   *wfmocks.MockRetriever
	generator   *llmmocks.MockGenerator
}

func newService(t *testing.T) (*Service, serviceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := serviceDeps{
		transcripts: storagemocks.NewMockTranscriptStore(ctrl),
		lectures:    storagemocks.NewMockLectureStore(ctrl),
		retriever:   wfmocks.NewMockRetriever(ctrl),
		generator:   llmmocks.NewMockGenerator(ctrl),
	}
	summarizer := workflow.NewSummarizer(deps.generator)
	svc := NewService(
		deps.transcripts,
		deps.lectures,
		deps.retriever,
		deps.generator,
		workflow.NewQAWorkflow(deps.transcripts, deps.retriever, deps.generator, nil),
		workflow.NewSearchWorkflow(deps.transcripts, deps.retriever, deps.generator),
		workflow.NewSummaryWorkflow(deps.transcripts, deps.generator, summarizer),
		summarizer,
	)
	return svc, deps
}

func TestService_Ask_WorkflowPath(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return(testTranscript, nil)
	deps.retriever.EXPECT().Exists(ctx, "lec1").Return(true)
	deps.retriever.EXPECT().
		Search(ctx, "lec1", "q", index.TopK, index.Filters{}).
		Return([]index.RetrievalResult{{Text: "Entropy measures disorder in a system."}}, nil)
	deps.generator.EXPECT().Invoke(ctx, gomock.Any()).Return("workflow answer", nil)

	resp := svc.Ask(ctx, "lec1", "q")
	if resp.Answer != "workflow answer" {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].StartStr != "00:00:01.00" {
		t.Errorf("Sources = %+v", resp.Sources)
	}
}

func TestService_Ask_DirectFallback(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	// Workflow path: retrieval fails, setting the workflow error
	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return(testTranscript, nil).Times(2)
	deps.retriever.EXPECT().Exists(ctx, "lec1").Return(true)
	deps.retriever.EXPECT().
		Search(ctx, "lec1", "q", index.TopK, index.Filters{}).
		Return(nil, errors.New("backend down"))

	// Direct path: wider retrieval succeeds, prompt carries the full transcript
	deps.retriever.EXPECT().
		Search(ctx, "lec1", "q", directAskK, index.Filters{}).
		Return([]index.RetrievalResult{{Text: "The second law states entropy never decreases."}}, nil)
	deps.generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.Contains(prompt, "Lecture Transcript:") {
				t.Errorf("direct prompt missing transcript block")
			}
			return "direct answer", nil
		})

	resp := svc.Ask(ctx, "lec1", "q")
	if resp.Answer != "direct answer" {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].StartStr != "00:00:02.50" {
		t.Errorf("Sources = %+v", resp.Sources)
	}
}

func TestService_Ask_BothPathsFailStillWellFormed(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().
		LoadTranscript(ctx, "lec1").
		Return("", storage.ErrNotFound).
		Times(2)

	resp := svc.Ask(ctx, "lec1", "q")
	if resp.Answer != MissingTranscriptAnswer {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if resp.Sources == nil || len(resp.Sources) != 0 {
		t.Errorf("Sources = %v, want empty non-nil", resp.Sources)
	}
}

func TestService_Ask_DirectGenerationError(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return(testTranscript, nil).Times(2)
	deps.retriever.EXPECT().Exists(ctx, "lec1").Return(true)
	deps.retriever.EXPECT().
		Search(ctx, "lec1", "q", index.TopK, index.Filters{}).
		Return(nil, errors.New("backend down"))
	deps.retriever.EXPECT().
		Search(ctx, "lec1", "q", directAskK, index.Filters{}).
		Return([]index.RetrievalResult{{Text: "chunk"}}, nil)
	deps.generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		Return("", errors.New("llm down"))

	resp := svc.Ask(ctx, "lec1", "q")
	if !strings.HasPrefix(resp.Answer, "Error generating answer:") {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 {
		t.Errorf("Sources = %+v, want the placeholder citation", resp.Sources)
	}
}

func TestService_Search_PassThrough(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.retriever.EXPECT().Exists(ctx, "lec1").Return(false)

	resp := svc.Search(ctx, "q", []string{"lec1"})
	if resp.ConsolidatedAnswer != workflow.NoResultsAnswer {
		t.Errorf("ConsolidatedAnswer = %q", resp.ConsolidatedAnswer)
	}
	if resp.Results == nil {
		t.Error("Results should be empty, not nil")
	}
}

func TestService_Summarize_WorkflowPathStoresSummary(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return(testTranscript, nil)
	deps.generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			switch {
			case strings.Contains(prompt, "comma-separated"):
				return "entropy, thermodynamics", nil
			case strings.Contains(prompt, "JSON array"):
				return `[{"timestamp": "00:01", "description": "Intro"}]`, nil
			default:
				return "the summary", nil
			}
		}).
		Times(3)
	deps.lectures.EXPECT().UpdateSummary(ctx, "lec1", "the summary").Return(nil)

	resp, err := svc.Summarize(ctx, "lec1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if resp.Summary != "the summary" || len(resp.KeyTopics) != 2 || len(resp.KeyMoments) != 1 {
		t.Errorf("Summarize() = %+v", resp)
	}
}

func TestService_Summarize_CachedFallback(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return("", storage.ErrNotFound)
	deps.lectures.EXPECT().
		GetByID(ctx, "lec1").
		Return(&storage.LectureRecord{ID: "lec1", Summary: "cached summary"}, nil)

	resp, err := svc.Summarize(ctx, "lec1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if resp.Summary != "cached summary" {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if len(resp.KeyTopics) != 0 || len(resp.KeyMoments) != 0 {
		t.Errorf("cached fallback carries extras: %+v", resp)
	}
}

func TestService_Summarize_RegeneratesWhenNoCache(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	// Workflow loads the transcript but every stage call fails
	var calls atomic.Int32
	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return(testTranscript, nil).Times(2)
	deps.generator.EXPECT().
		Invoke(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, string) (string, error) {
			if calls.Add(1) <= 3 {
				return "", errors.New("llm flaky")
			}
			return "regenerated summary", nil
		}).
		Times(4)
	deps.lectures.EXPECT().
		GetByID(ctx, "lec1").
		Return(&storage.LectureRecord{ID: "lec1"}, nil)
	deps.lectures.EXPECT().UpdateSummary(ctx, "lec1", "regenerated summary").Return(nil)

	resp, err := svc.Summarize(ctx, "lec1")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if resp.Summary != "regenerated summary" {
		t.Errorf("Summary = %q", resp.Summary)
	}
}

func TestService_Summarize_NoTranscriptAnywhere(t *testing.T) {
	svc, deps := newService(t)
	ctx := context.Background()

	deps.transcripts.EXPECT().LoadTranscript(ctx, "lec1").Return("", storage.ErrNotFound).Times(2)
	deps.lectures.EXPECT().GetByID(ctx, "lec1").Return(nil, storage.ErrNotFound)

	_, err := svc.Summarize(ctx, "lec1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Summarize() error = %v, want ErrNotFound", err)
	}
}
