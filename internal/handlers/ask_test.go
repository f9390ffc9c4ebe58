package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"lecturemind/internal/handlers/mocks"
	"lecturemind/internal/rag"
	storagemocks "lecturemind/internal/storage/mocks"
	"lecturemind/internal/workflow"
)

func TestAskHandler_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().VerifyOwnership(gomock.Any(), "lec1", testUserID).Return(true, nil)

	ragService := mocks.NewMockRAGService(ctrl)
	ragService.EXPECT().Ask(gomock.Any(), "lec1", "what is entropy?").Return(rag.AnswerResponse{
		Answer:  "Entropy measures disorder.",
		Sources: []workflow.Source{{Text: "chunk", VideoTimestamp: "12s"}},
	})

	h := NewAskHandler(lectures, ragService)
	w := httptest.NewRecorder()

	h.Ask(w, newRequest(http.MethodPost, "/api/lectures/lec1/ask", "lec1", `{"question":"what is entropy?"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Ask status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp rag.AnswerResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Ask response decode error = %v", err)
	}
	if resp.Answer != "Entropy measures disorder." {
		t.Errorf("Ask answer = %q", resp.Answer)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].VideoTimestamp != "12s" {
		t.Errorf("Ask sources = %+v", resp.Sources)
	}
}

func TestAskHandler_AskValidation(t *testing.T) {
	tests := []struct {
		name       string
		owns       bool
		body       string
		wantStatus int
	}{
		{name: "empty question", owns: true, body: `{"question":""}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", owns: true, body: `{`, wantStatus: http.StatusBadRequest},
		{name: "not owner", owns: false, body: `{"question":"q"}`, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lectures := storagemocks.NewMockLectureStore(ctrl)
			lectures.EXPECT().VerifyOwnership(gomock.Any(), "lec1", testUserID).Return(tt.owns, nil)

			h := NewAskHandler(lectures, mocks.NewMockRAGService(ctrl))
			w := httptest.NewRecorder()

			h.Ask(w, newRequest(http.MethodPost, "/api/lectures/lec1/ask", "lec1", tt.body))

			if w.Code != tt.wantStatus {
				t.Errorf("Ask status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAskHandler_MultiSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().ListIDsByOwner(gomock.Any(), testUserID).Return([]string{"lec1", "lec2"}, nil)

	ragService := mocks.NewMockRAGService(ctrl)
	ragService.EXPECT().Search(gomock.Any(), "entropy", []string{"lec1", "lec2"}).Return(rag.SearchResponse{
		ConsolidatedAnswer: "Both lectures cover entropy.",
		Results: []workflow.SearchResult{
			{LectureID: "lec1", Text: "a", Score: 0.9},
			{LectureID: "lec2", Text: "b", Score: 0.7},
			{LectureID: "lec2", Text: "c", Score: 0.5},
		},
	})

	h := NewAskHandler(lectures, ragService)
	w := httptest.NewRecorder()

	body := `{"query":"entropy","lecture_ids":["lec1","lec2"],"limit":2}`
	h.MultiSearch(w, newRequest(http.MethodPost, "/api/lectures/multi-search", "", body))

	if w.Code != http.StatusOK {
		t.Fatalf("MultiSearch status = %v, want %v, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp MultiSearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("MultiSearch response decode error = %v", err)
	}
	if len(resp.Results) != 2 {
		t.Errorf("MultiSearch results = %d, want limit 2", len(resp.Results))
	}
	if resp.TotalFound != 3 {
		t.Errorf("MultiSearch total found = %d, want 3", resp.TotalFound)
	}
	if resp.ConsolidatedAnswer != "Both lectures cover entropy." {
		t.Errorf("MultiSearch consolidated answer = %q", resp.ConsolidatedAnswer)
	}
}

func TestAskHandler_MultiSearchForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lectures := storagemocks.NewMockLectureStore(ctrl)
	lectures.EXPECT().ListIDsByOwner(gomock.Any(), testUserID).Return([]string{"lec1"}, nil)

	h := NewAskHandler(lectures, mocks.NewMockRAGService(ctrl))
	w := httptest.NewRecorder()

	body := `{"query":"entropy","lecture_ids":["lec1","lec9"]}`
	h.MultiSearch(w, newRequest(http.MethodPost, "/api/lectures/multi-search", "", body))

	if w.Code != http.StatusForbidden {
		t.Errorf("MultiSearch status = %v, want %v", w.Code, http.StatusForbidden)
	}
}
