package index

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	llmmocks "lecturemind/internal/llm/mocks"
	"lecturemind/internal/vectorstore"
	vsmocks "lecturemind/internal/vectorstore/mocks"
)

func TestCollectionName(t *testing.T) {
	if got := CollectionName("abc-123"); got != "lecture_abc-123" {
		t.Errorf("CollectionName() = %q, want %q", got, "lecture_abc-123")
	}
}

func TestLectureIndex_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	store.EXPECT().
		EnsureCollection(gomock.Any(), "lecture_lec1", 768).
		Return(nil)

	idx := New(embedder, store, 768)
	if err := idx.Create(context.Background(), "lec1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestLectureIndex_Index(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	chunks := []string{"first chunk", "second chunk"}
	embedder.EXPECT().
		EmbedDocuments(gomock.Any(), chunks).
		Return([][]float32{{0.1, 0.2}, {0.3, 0.4}}, nil)

	var captured []vectorstore.Point
	store.EXPECT().
		Upsert(gomock.Any(), "lecture_lec1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			captured = points
			return nil
		})

	courseID := int64(7)
	idx := New(embedder, store, 2)
	err := idx.Index(context.Background(), chunks, ChunkMeta{
		LectureID: "lec1",
		OwnerID:   42,
		CourseID:  &courseID,
	})
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	if len(captured) != 2 {
		t.Fatalf("expected 2 points, got %d", len(captured))
	}
	for i, p := range captured {
		if p.ID == "" {
			t.Errorf("point %d has empty id", i)
		}
		if p.Meta["text"] != chunks[i] {
			t.Errorf("point %d text = %v, want %q", i, p.Meta["text"], chunks[i])
		}
		if p.Meta["lecture_id"] != "lec1" {
			t.Errorf("point %d lecture_id = %v", i, p.Meta["lecture_id"])
		}
		if p.Meta["owner_id"] != int64(42) {
			t.Errorf("point %d owner_id = %v", i, p.Meta["owner_id"])
		}
		if p.Meta["chunk_index"] != i {
			t.Errorf("point %d chunk_index = %v", i, p.Meta["chunk_index"])
		}
		if p.Meta["course_id"] != int64(7) {
			t.Errorf("point %d course_id = %v", i, p.Meta["course_id"])
		}
	}
}

func TestLectureIndex_Index_EmptyChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	idx := New(embedder, store, 2)
	if err := idx.Index(context.Background(), nil, ChunkMeta{LectureID: "lec1"}); err != nil {
		t.Fatalf("Index() with no chunks error = %v", err)
	}
}

func TestLectureIndex_Index_EmbedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	embedder.EXPECT().
		EmbedDocuments(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend down"))

	idx := New(embedder, store, 2)
	err := idx.Index(context.Background(), []string{"chunk"}, ChunkMeta{LectureID: "lec1"})
	if err == nil {
		t.Fatal("expected error when embedding fails")
	}
}

func TestLectureIndex_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	embedder.EXPECT().
		EmbedQuery(gomock.Any(), "what is entropy").
		Return([]float32{0.5, 0.5}, nil)

	owner := int64(42)
	store.EXPECT().
		Search(gomock.Any(), "lecture_lec1", []float32{0.5, 0.5}, 4, map[string]int64{"owner_id": 42}).
		Return([]vectorstore.SearchResult{
			{
				PointID: "p1",
				Score:   0.91,
				Meta: map[string]any{
					"text":        "entropy measures disorder",
					"lecture_id":  "lec1",
					"owner_id":    int64(42),
					"chunk_index": int64(3),
				},
			},
		}, nil)

	idx := New(embedder, store, 2)
	results, err := idx.Search(context.Background(), "lec1", "what is entropy", 0, Filters{OwnerID: &owner})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Text != "entropy measures disorder" || r.LectureID != "lec1" || r.ChunkIndex != 3 || r.OwnerID != 42 {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Score != 0.91 {
		t.Errorf("Score = %v, want 0.91", r.Score)
	}
}

func TestLectureIndex_Exists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		err    error
		want   bool
	}{
		{"present", true, nil, true},
		{"absent", false, nil, false},
		{"backend error treated as absent", false, errors.New("unreachable"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := vsmocks.NewMockVectorStore(ctrl)
			embedder := llmmocks.NewMockEmbedder(ctrl)

			store.EXPECT().
				CollectionExists(gomock.Any(), "lecture_lec1").
				Return(tt.exists, tt.err)

			idx := New(embedder, store, 2)
			if got := idx.Exists(context.Background(), "lec1"); got != tt.want {
				t.Errorf("Exists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLectureIndex_Destroy_SwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vsmocks.NewMockVectorStore(ctrl)
	embedder := llmmocks.NewMockEmbedder(ctrl)

	store.EXPECT().
		DeleteCollection(gomock.Any(), "lecture_lec1").
		Return(errors.New("not found"))

	idx := New(embedder, store, 2)
	idx.Destroy(context.Background(), "lec1")
}
