package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
)

// LectureHandler serves lecture metadata endpoints.
type LectureHandler struct {
	lectures    storage.LectureStore
	transcripts storage.TranscriptStore
	index       IndexAdmin
	mediaDir    string
}

// NewLectureHandler creates a new LectureHandler.
func NewLectureHandler(lectures storage.LectureStore, transcripts storage.TranscriptStore, index IndexAdmin, mediaDir string) *LectureHandler {
	return &LectureHandler{
		lectures:    lectures,
		transcripts: transcripts,
		index:       index,
		mediaDir:    mediaDir,
	}
}

// LectureResponse is the JSON shape for a lecture record.
type LectureResponse struct {
	LectureID string  `json:"lecture_id"`
	Title     string  `json:"title"`
	Filename  string  `json:"filename"`
	Duration  float64 `json:"duration"`
	CourseID  *int64  `json:"course_id,omitempty"`
	Summary   string  `json:"summary,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func lectureResponse(lecture *storage.LectureRecord) LectureResponse {
	return LectureResponse{
		LectureID: lecture.ID,
		Title:     lecture.Title,
		Filename:  lecture.Filename,
		Duration:  lecture.Duration,
		CourseID:  lecture.CourseID,
		Summary:   lecture.Summary,
		CreatedAt: lecture.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List returns all lectures owned by the authenticated user.
func (h *LectureHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	lectures, err := h.lectures.ListByOwner(ctx, userID)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list lectures", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list lectures")
		return
	}

	responses := make([]LectureResponse, 0, len(lectures))
	for _, lecture := range lectures {
		responses = append(responses, lectureResponse(lecture))
	}
	writeJSON(w, http.StatusOK, map[string]any{"lectures": responses})
}

// Detail returns a single lecture owned by the authenticated user.
func (h *LectureHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lectureID := chi.URLParam(r, "lectureID")

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	lecture, err := h.lectures.GetByID(ctx, lectureID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Lecture not found")
			return
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to load lecture", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load lecture")
		return
	}
	if lecture.OwnerID != userID {
		writeError(w, http.StatusForbidden, "Access denied")
		return
	}

	writeJSON(w, http.StatusOK, lectureResponse(lecture))
}

// LectureUpdateRequest carries the editable lecture fields.
type LectureUpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	CourseID *int64  `json:"course_id,omitempty"`
}

// Update changes a lecture's title or course assignment.
func (h *LectureHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lectureID := chi.URLParam(r, "lectureID")

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req LectureUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lecture, err := h.lectures.UpdateDetails(ctx, lectureID, userID, req.Title, req.CourseID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Lecture not found or access denied")
			return
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to update lecture", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update lecture")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lecture_id": lecture.ID,
		"title":      lecture.Title,
		"course_id":  lecture.CourseID,
		"message":    "Lecture updated successfully",
	})
}

// Delete removes a lecture and all its associated data: the database
// record, the transcript files, the vector index, and the media file.
func (h *LectureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	lectureID := chi.URLParam(r, "lectureID")

	if _, ok := requireOwnership(w, r, h.lectures, lectureID); !ok {
		return
	}

	if err := h.lectures.Delete(ctx, lectureID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Lecture not found")
			return
		}
		logger.ErrorContext(ctx, "failed to delete lecture", "lecture_id", lectureID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete lecture")
		return
	}

	// Cleanup beyond the database record is best-effort.
	if err := h.transcripts.Delete(ctx, lectureID); err != nil {
		logger.WarnContext(ctx, "failed to delete transcript", "lecture_id", lectureID, "error", err)
	}
	h.index.Destroy(ctx, lectureID)
	h.removeMedia(lectureID, logger)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Lecture and all associated data deleted successfully",
		"success": true,
	})
}

// removeMedia deletes media files stored for the lecture. Media files are
// named {lectureID}_{originalFilename}.
func (h *LectureHandler) removeMedia(lectureID string, logger *slog.Logger) {
	entries, err := os.ReadDir(h.mediaDir)
	if err != nil {
		logger.Warn("failed to read media dir", "dir", h.mediaDir, "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), lectureID+"_") {
			continue
		}
		path := filepath.Join(h.mediaDir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove media file", "path", path, "error", err)
		}
	}
}
