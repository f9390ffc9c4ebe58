package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
)

// PDFHandler generates and serves PDF exports of lecture content.
type PDFHandler struct {
	lectures    storage.LectureStore
	transcripts storage.TranscriptStore
	rag         RAGService
	renderer    Renderer
	pdfDir      string
}

// NewPDFHandler creates a new PDFHandler. renderer may be nil, in which
// case generation requests are answered with 501.
func NewPDFHandler(lectures storage.LectureStore, transcripts storage.TranscriptStore, rag RAGService, renderer Renderer, pdfDir string) *PDFHandler {
	return &PDFHandler{
		lectures:    lectures,
		transcripts: transcripts,
		rag:         rag,
		renderer:    renderer,
		pdfDir:      pdfDir,
	}
}

// PDFRequest selects what to export.
type PDFRequest struct {
	Type string `json:"type"`
}

// PDFResponse points at a generated document.
type PDFResponse struct {
	PDFPath  string `json:"pdf_path"`
	Filename string `json:"filename"`
}

// Generate renders the lecture transcript or summary to a PDF file.
func (h *PDFHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	if h.renderer == nil {
		writeError(w, http.StatusNotImplemented, "PDF generation is not configured")
		return
	}

	var req PDFRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var path string
	switch req.Type {
	case "transcript":
		transcript, err := h.transcripts.LoadTranscript(ctx, lectureID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Transcript not found")
				return
			}
			logger.ErrorContext(ctx, "failed to load transcript", "lecture_id", lectureID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load transcript")
			return
		}
		path, err = h.renderer.RenderTranscript(ctx, lectureID, transcript)
		if err != nil {
			logger.ErrorContext(ctx, "transcript PDF render failed", "lecture_id", lectureID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}
	case "summary":
		summary, err := h.rag.Summarize(ctx, lectureID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "Transcript not found")
				return
			}
			logger.ErrorContext(ctx, "summarization failed", "lecture_id", lectureID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate summary")
			return
		}
		path, err = h.renderer.RenderSummary(ctx, lectureID, summary.Summary)
		if err != nil {
			logger.ErrorContext(ctx, "summary PDF render failed", "lecture_id", lectureID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "Invalid PDF type. Use 'transcript' or 'summary'")
		return
	}

	writeJSON(w, http.StatusOK, PDFResponse{
		PDFPath:  path,
		Filename: filepath.Base(path),
	})
}

// Download serves a previously generated PDF.
func (h *PDFHandler) Download(w http.ResponseWriter, r *http.Request) {
	lectureID := chi.URLParam(r, "lectureID")
	filename := chi.URLParam(r, "filename")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	// Reject anything that could escape the PDF directory.
	if filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		writeError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	path := filepath.Join(h.pdfDir, filename)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "PDF not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	http.ServeFile(w, r, path)
}
