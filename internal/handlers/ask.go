package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
	"lecturemind/internal/workflow"
)

const defaultMultiSearchLimit = 20

// AskHandler answers questions about lectures.
type AskHandler struct {
	lectures storage.LectureStore
	rag      RAGService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(lectures storage.LectureStore, rag RAGService) *AskHandler {
	return &AskHandler{lectures: lectures, rag: rag}
}

// QuestionRequest is the payload for single-lecture questions.
type QuestionRequest struct {
	Question string `json:"question"`
}

// Ask answers a question about one lecture with timestamped citations.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	writeJSON(w, http.StatusOK, h.rag.Ask(ctx, lectureID, req.Question))
}

// MultiSearchRequest is the payload for searching across lectures.
type MultiSearchRequest struct {
	Query      string   `json:"query"`
	LectureIDs []string `json:"lecture_ids"`
	Limit      int      `json:"limit,omitempty"`
}

// MultiSearchResponse wraps results from a cross-lecture search.
type MultiSearchResponse struct {
	Results            []workflow.SearchResult `json:"results"`
	ConsolidatedAnswer string                  `json:"consolidated_answer"`
	TotalFound         int                     `json:"total_found"`
	Query              string                  `json:"query"`
}

// MultiSearch runs a semantic search across several of the user's lectures
// and consolidates the hits into one answer.
func (h *AskHandler) MultiSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req MultiSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}
	if len(req.LectureIDs) == 0 {
		writeError(w, http.StatusBadRequest, "At least one lecture id is required")
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultMultiSearchLimit
	}

	ownedIDs, err := h.lectures.ListIDsByOwner(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list lecture ids", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to verify lecture access")
		return
	}
	owned := make(map[string]bool, len(ownedIDs))
	for _, id := range ownedIDs {
		owned[id] = true
	}
	for _, id := range req.LectureIDs {
		if !owned[id] {
			writeError(w, http.StatusForbidden, "Access denied to lecture: "+id)
			return
		}
	}

	resp := h.rag.Search(ctx, req.Query, req.LectureIDs)
	if resp.Error != "" {
		logger.ErrorContext(ctx, "multi-lecture search failed", "error", resp.Error)
		writeError(w, http.StatusInternalServerError, resp.Error)
		return
	}

	results := resp.Results
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}

	writeJSON(w, http.StatusOK, MultiSearchResponse{
		Results:            results,
		ConsolidatedAnswer: resp.ConsolidatedAnswer,
		TotalFound:         len(resp.Results),
		Query:              req.Query,
	})
}
