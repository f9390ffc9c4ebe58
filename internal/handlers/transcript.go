package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
	"lecturemind/internal/timestamp"
)

const defaultSearchLimit = 5

// TranscriptHandler serves parsed transcripts and keyword search over them.
type TranscriptHandler struct {
	lectures    storage.LectureStore
	transcripts storage.TranscriptStore
}

// NewTranscriptHandler creates a new TranscriptHandler.
func NewTranscriptHandler(lectures storage.LectureStore, transcripts storage.TranscriptStore) *TranscriptHandler {
	return &TranscriptHandler{lectures: lectures, transcripts: transcripts}
}

// SegmentResponse is the JSON shape for a transcript segment.
type SegmentResponse struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
	StartStr  string  `json:"start_str"`
	EndStr    string  `json:"end_str"`
}

// TranscriptResponse is the JSON shape for a full transcript.
type TranscriptResponse struct {
	Segments      []SegmentResponse `json:"segments"`
	TotalDuration float64           `json:"total_duration"`
}

// SegmentMatchResponse is a keyword search hit with a jump timestamp.
type SegmentMatchResponse struct {
	Text           string  `json:"text"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	StartStr       string  `json:"start_str"`
	EndStr         string  `json:"end_str"`
	VideoTimestamp string  `json:"video_timestamp"`
}

// SearchTranscriptResponse wraps keyword search results.
type SearchTranscriptResponse struct {
	Results    []SegmentMatchResponse `json:"results"`
	Query      string                 `json:"query"`
	TotalFound int                    `json:"total_found"`
}

// loadSegments loads and parses a lecture's transcript, writing the error
// response itself when that fails.
func (h *TranscriptHandler) loadSegments(w http.ResponseWriter, r *http.Request, lectureID string) ([]timestamp.Segment, bool) {
	ctx := r.Context()

	transcript, err := h.transcripts.LoadTranscript(ctx, lectureID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return nil, false
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load transcript", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load transcript")
		return nil, false
	}

	return timestamp.Parse(transcript), true
}

// Transcript returns the full transcript as timestamped segments.
func (h *TranscriptHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	segments, ok := h.loadSegments(w, r, lectureID)
	if !ok {
		return
	}

	var totalDuration float64
	if len(segments) > 0 {
		totalDuration = segments[len(segments)-1].EndTime
	}

	responses := make([]SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		responses = append(responses, SegmentResponse{
			StartTime: seg.StartTime,
			EndTime:   seg.EndTime,
			Text:      seg.Text,
			StartStr:  seg.StartStr,
			EndStr:    seg.EndStr,
		})
	}

	writeJSON(w, http.StatusOK, TranscriptResponse{
		Segments:      responses,
		TotalDuration: totalDuration,
	})
}

// Search finds transcript segments matching a keyword query.
func (h *TranscriptHandler) Search(w http.ResponseWriter, r *http.Request) {
	lectureID := chi.URLParam(r, "lectureID")

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	segments, ok := h.loadSegments(w, r, lectureID)
	if !ok {
		return
	}

	matches := timestamp.FindRelevant(query, segments, limit)
	results := make([]SegmentMatchResponse, 0, len(matches))
	for _, seg := range matches {
		results = append(results, SegmentMatchResponse{
			Text:           seg.Text,
			StartTime:      seg.StartTime,
			EndTime:        seg.EndTime,
			StartStr:       seg.StartStr,
			EndStr:         seg.EndStr,
			VideoTimestamp: seg.StartStr,
		})
	}

	writeJSON(w, http.StatusOK, SearchTranscriptResponse{
		Results:    results,
		Query:      query,
		TotalFound: len(results),
	})
}
