package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"lecturemind/internal/handlers/mocks"
	"lecturemind/internal/storage"
	storagemocks "lecturemind/internal/storage/mocks"
)

func TestLectureHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().ListByOwner(gomock.Any(), testUserID).Return([]*storage.LectureRecord{
		{ID: "lec1", OwnerID: testUserID, Title: "Entropy", Filename: "entropy.mp3", Duration: 120, CreatedAt: time.Now()},
	}, nil)

	h := NewLectureHandler(lectures, storagemocks.NewMockTranscriptStore(ctrl), mocks.NewMockIndexAdmin(ctrl), t.TempDir())
	w := httptest.NewRecorder()

	h.List(w, newRequest(http.MethodGet, "/api/lectures/my-lectures", "", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"lecture_id":"lec1"`) || !strings.Contains(w.Body.String(), `"title":"Entropy"`) {
		t.Errorf("List body = %s", w.Body.String())
	}
}

func TestLectureHandler_Detail(t *testing.T) {
	tests := []struct {
		name       string
		lecture    *storage.LectureRecord
		err        error
		wantStatus int
	}{
		{
			name:       "owned lecture",
			lecture:    &storage.LectureRecord{ID: "lec1", OwnerID: testUserID, Title: "Entropy"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "someone else's lecture",
			lecture:    &storage.LectureRecord{ID: "lec1", OwnerID: 99},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing lecture",
			err:        storage.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lectures := storagemocks.NewMockLectureStore(ctrl)
			lectures.EXPECT().GetByID(gomock.Any(), "lec1").Return(tt.lecture, tt.err)

			h := NewLectureHandler(lectures, storagemocks.NewMockTranscriptStore(ctrl), mocks.NewMockIndexAdmin(ctrl), t.TempDir())
			w := httptest.NewRecorder()

			h.Detail(w, newRequest(http.MethodGet, "/api/lectures/lec1", "lec1", ""))

			if w.Code != tt.wantStatus {
				t.Errorf("Detail status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestLectureHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().
		UpdateDetails(gomock.Any(), "lec1", testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, id string, _ int64, title *string, courseID *int64) (*storage.LectureRecord, error) {
			if title == nil || *title != "New title" {
				t.Errorf("UpdateDetails title = %v, want New title", title)
			}
			if courseID != nil {
				t.Errorf("UpdateDetails course id = %v, want nil", courseID)
			}
			return &storage.LectureRecord{ID: id, OwnerID: testUserID, Title: *title}, nil
		})

	h := NewLectureHandler(lectures, storagemocks.NewMockTranscriptStore(ctrl), mocks.NewMockIndexAdmin(ctrl), t.TempDir())
	w := httptest.NewRecorder()

	h.Update(w, newRequest(http.MethodPut, "/api/lectures/lec1", "lec1", `{"title":"New title"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Update status = %v, want %v, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "New title") {
		t.Errorf("Update body = %s, want new title", w.Body.String())
	}
}

func TestLectureHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mediaDir := t.TempDir()
	mediaPath := filepath.Join(mediaDir, "lec1_entropy.mp3")
	if err := os.WriteFile(mediaPath, []byte("audio"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	otherPath := filepath.Join(mediaDir, "lec2_other.mp3")
	if err := os.WriteFile(otherPath, []byte("audio"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().VerifyOwnership(gomock.Any(), "lec1", testUserID).Return(true, nil)
	lectures.EXPECT().Delete(gomock.Any(), "lec1").Return(nil)

	transcripts := storagemocks.NewMockTranscriptStore(ctrl)
	transcripts.EXPECT().Delete(gomock.Any(), "lec1").Return(nil)

	idx := mocks.NewMockIndexAdmin(ctrl)
	idx.EXPECT().Destroy(gomock.Any(), "lec1")

	h := NewLectureHandler(lectures, transcripts, idx, mediaDir)
	w := httptest.NewRecorder()

	h.Delete(w, newRequest(http.MethodDelete, "/api/lectures/lec1", "lec1", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("Delete status = %v, want %v, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if _, err := os.Stat(mediaPath); !os.IsNotExist(err) {
		t.Errorf("Delete left media file behind: %v", err)
	}
	if _, err := os.Stat(otherPath); err != nil {
		t.Errorf("Delete removed another lecture's media: %v", err)
	}
}

func TestLectureHandler_DeleteForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().VerifyOwnership(gomock.Any(), "lec1", testUserID).Return(false, nil)

	h := NewLectureHandler(lectures, storagemocks.NewMockTranscriptStore(ctrl), mocks.NewMockIndexAdmin(ctrl), t.TempDir())
	w := httptest.NewRecorder()

	h.Delete(w, newRequest(http.MethodDelete, "/api/lectures/lec1", "lec1", ""))

	if w.Code != http.StatusForbidden {
		t.Errorf("Delete status = %v, want %v", w.Code, http.StatusForbidden)
	}
}
