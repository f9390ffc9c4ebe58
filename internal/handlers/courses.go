package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/storage"
)

// CourseHandler groups lectures into named courses.
type CourseHandler struct {
	courses  storage.CourseStore
	lectures storage.LectureStore
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courses storage.CourseStore, lectures storage.LectureStore) *CourseHandler {
	return &CourseHandler{courses: courses, lectures: lectures}
}

// CourseCreateRequest is the payload for creating a course.
type CourseCreateRequest struct {
	Name string `json:"name"`
}

// CourseResponse is the JSON shape for a course.
type CourseResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LectureCount int    `json:"lecture_count"`
	CreatedAt    string `json:"created_at"`
}

// Create registers a new course for the authenticated user.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CourseCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Course name is required")
		return
	}

	course := &storage.CourseRecord{OwnerID: userID, Name: req.Name}
	id, err := h.courses.Insert(ctx, course)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to create course", "name", req.Name, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to create course")
		return
	}

	writeJSON(w, http.StatusOK, CourseResponse{
		ID:        id,
		Name:      req.Name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// List returns the user's courses with lecture counts.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	courses, err := h.courses.ListByOwner(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list courses", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list courses")
		return
	}

	counts := make(map[int64]int)
	lectures, err := h.lectures.ListByOwner(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "failed to count lectures per course", "error", err)
	} else {
		for _, lecture := range lectures {
			if lecture.CourseID != nil {
				counts[*lecture.CourseID]++
			}
		}
	}

	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, CourseResponse{
			ID:           course.ID,
			Name:         course.Name,
			LectureCount: counts[course.ID],
			CreatedAt:    course.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, responses)
}
