package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
)

// SummaryHandler serves lecture summaries.
type SummaryHandler struct {
	lectures storage.LectureStore
	rag      RAGService
	markdown goldmark.Markdown
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(lectures storage.LectureStore, rag RAGService) *SummaryHandler {
	return &SummaryHandler{
		lectures: lectures,
		rag:      rag,
		markdown: goldmark.New(),
	}
}

// Summary returns the lecture summary with key topics and moments when
// available.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	resp, err := h.rag.Summarize(ctx, lectureID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "summarization failed", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// SummaryHTML returns the summary rendered from markdown to HTML.
func (h *SummaryHandler) SummaryHTML(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	resp, err := h.rag.Summarize(ctx, lectureID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "summarization failed", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate summary")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(resp.Summary), &buf); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "markdown render failed", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render summary")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, buf.String())
}
