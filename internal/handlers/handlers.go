package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_rag.go -package=mocks lecturemind/internal/handlers RAGService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingestor.go -package=mocks lecturemind/internal/handlers Ingestor
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_admin.go -package=mocks lecturemind/internal/handlers IndexAdmin
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_renderer.go -package=mocks lecturemind/internal/handlers Renderer

import (
	"context"
	"encoding/json"
	"net/http"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/ingest"
	"lecturemind/internal/rag"
	"lecturemind/internal/storage"
)

// RAGService answers questions and produces summaries over indexed lectures.
type RAGService interface {
	Ask(ctx context.Context, lectureID, question string) rag.AnswerResponse
	Search(ctx context.Context, query string, lectureIDs []string) rag.SearchResponse
	Summarize(ctx context.Context, lectureID string) (rag.SummaryResponse, error)
}

// Ingestor runs the upload pipeline for a new recording.
type Ingestor interface {
	Ingest(ctx context.Context, up ingest.Upload) (*storage.LectureRecord, error)
}

// IndexAdmin removes a lecture's vector index.
type IndexAdmin interface {
	Destroy(ctx context.Context, lectureID string)
}

// Renderer produces PDF documents from lecture content. Implementations
// return the path of the generated file.
type Renderer interface {
	RenderTranscript(ctx context.Context, lectureID, transcript string) (string, error)
	RenderSummary(ctx context.Context, lectureID, summary string) (string, error)
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// requireUser extracts the authenticated user id set by the auth middleware.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := contextutil.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return userID, true
}

// requireOwnership verifies that the lecture exists and belongs to the
// authenticated user, writing the appropriate error response if not.
func requireOwnership(w http.ResponseWriter, r *http.Request, lectures storage.LectureStore, lectureID string) (int64, bool) {
	userID, ok := requireUser(w, r)
	if !ok {
		return 0, false
	}

	owns, err := lectures.VerifyOwnership(r.Context(), lectureID, userID)
	if err != nil {
		logger := contextutil.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "ownership check failed", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to verify ownership")
		return 0, false
	}
	if !owns {
		writeError(w, http.StatusForbidden, "Access denied")
		return 0, false
	}
	return userID, true
}
