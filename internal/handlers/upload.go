package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/ingest"
	"lecturemind/internal/service"
)

// UploadHandler handles lecture recording uploads.
type UploadHandler struct {
	pipeline Ingestor
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(pipeline Ingestor) *UploadHandler {
	return &UploadHandler{pipeline: pipeline}
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	LectureID string `json:"lecture_id"`
}

// ServeHTTP accepts a multipart upload with a "file" part and optional
// "title" and "course_id" fields, and runs the ingest pipeline on it.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	// Cap the request body; the pipeline enforces the same limit on the
	// file itself, this catches oversized uploads before buffering.
	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxUploadSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logger.WarnContext(ctx, "upload too large", "limit", maxErr.Limit)
			writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 1024MB")
			return
		}
		logger.WarnContext(ctx, "missing file in upload", "error", err)
		writeError(w, http.StatusBadRequest, "A file is required")
		return
	}
	defer file.Close()

	up := ingest.Upload{
		OwnerID:  userID,
		Filename: header.Filename,
		Title:    r.FormValue("title"),
		Source:   file,
	}

	if raw := r.FormValue("course_id"); raw != "" {
		courseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid course_id")
			return
		}
		up.CourseID = &courseID
	}

	lecture, err := h.pipeline.Ingest(ctx, up)
	if err != nil {
		logger.ErrorContext(ctx, "upload processing failed", "filename", header.Filename, "error", err)
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "File processing failed")
		return
	}

	logger.InfoContext(ctx, "lecture uploaded", "lecture_id", lecture.ID, "title", lecture.Title)
	writeJSON(w, http.StatusOK, UploadResponse{LectureID: lecture.ID})
}
