package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"lecturemind/internal/storage"
	storagemocks "lecturemind/internal/storage/mocks"
)

func TestCourseHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	courses := storagemocks.NewMockCourseStore(ctrl)
	courses.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, course *storage.CourseRecord) (int64, error) {
			if course.OwnerID != testUserID || course.Name != "Thermodynamics" {
				t.Errorf("Insert course = %+v", course)
			}
			return 3, nil
		})

	h := NewCourseHandler(courses, storagemocks.NewMockLectureStore(ctrl))
	w := httptest.NewRecorder()

	h.Create(w, newRequest(http.MethodPost, "/api/courses/", "", `{"name":"Thermodynamics"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Create status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp CourseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Create response decode error = %v", err)
	}
	if resp.ID != 3 || resp.Name != "Thermodynamics" {
		t.Errorf("Create response = %+v", resp)
	}
}

func TestCourseHandler_CreateEmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewCourseHandler(storagemocks.NewMockCourseStore(ctrl), storagemocks.NewMockLectureStore(ctrl))
	w := httptest.NewRecorder()

	h.Create(w, newRequest(http.MethodPost, "/api/courses/", "", `{"name":"  "}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Create status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestCourseHandler_ListWithCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	courseID := int64(3)
	courses := storagemocks.NewMockCourseStore(ctrl)
	courses.EXPECT().ListByOwner(gomock.Any(), testUserID).Return([]*storage.CourseRecord{
		{ID: 3, OwnerID: testUserID, Name: "Thermodynamics", CreatedAt: time.Now()},
		{ID: 4, OwnerID: testUserID, Name: "Waves", CreatedAt: time.Now()},
	}, nil)

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().ListByOwner(gomock.Any(), testUserID).Return([]*storage.LectureRecord{
		{ID: "lec1", OwnerID: testUserID, CourseID: &courseID},
		{ID: "lec2", OwnerID: testUserID, CourseID: &courseID},
		{ID: "lec3", OwnerID: testUserID},
	}, nil)

	h := NewCourseHandler(courses, lectures)
	w := httptest.NewRecorder()

	h.List(w, newRequest(http.MethodGet, "/api/courses/", "", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("List status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp []CourseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("List response decode error = %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("List courses = %d, want 2", len(resp))
	}
	if resp[0].LectureCount != 2 || resp[1].LectureCount != 0 {
		t.Errorf("List lecture counts = %d/%d, want 2/0", resp[0].LectureCount, resp[1].LectureCount)
	}
}
