package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lecturemind/internal/contextutil"
	"lecturemind/internal/llm"
	"lecturemind/internal/vectorstore"
)

// TopK is the default number of chunks retrieved per query.
const TopK = 4

// RetrievalResult is one ranked hit from a lecture collection.
type RetrievalResult struct {
	LectureID  string
	Text       string
	Score      float32
	ChunkIndex int
	OwnerID    int64
	CourseID   int64
}

// ChunkMeta is the metadata attached to every chunk of a lecture at index
// time. CourseID is optional.
type ChunkMeta struct {
	LectureID string
	OwnerID   int64
	CourseID  *int64
}

// Filters restricts a search to records matching every supplied field.
type Filters struct {
	OwnerID  *int64
	CourseID *int64
}

// LectureIndex manages one vector collection per lecture: creation,
// population, similarity search, and teardown.
type LectureIndex struct {
	embedder   llm.Embedder
	store      vectorstore.VectorStore
	vectorSize int
	logger     *slog.Logger
}

// New creates a LectureIndex. vectorSize must match the embedding backend's
// output dimensionality; it is fixed per collection at creation time.
func New(embedder llm.Embedder, store vectorstore.VectorStore, vectorSize int) *LectureIndex {
	return &LectureIndex{
		embedder:   embedder,
		store:      store,
		vectorSize: vectorSize,
		logger:     slog.Default(),
	}
}

// CollectionName returns the collection name for a lecture id.
func CollectionName(lectureID string) string {
	return "lecture_" + lectureID
}

// Create ensures the lecture's collection exists. Repeated calls are no-ops.
func (x *LectureIndex) Create(ctx context.Context, lectureID string) error {
	return x.store.EnsureCollection(ctx, CollectionName(lectureID), x.vectorSize)
}

// Index embeds the chunks in one backend call and upserts one record per
// chunk with a freshly generated id. The payload of every record carries the
// chunk text, lecture id, owner id, chunk index, and course id when present.
func (x *LectureIndex) Index(ctx context.Context, chunks []string, meta ChunkMeta) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(chunks) == 0 {
		return nil
	}

	embeddings, err := x.embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		payload := map[string]any{
			"text":        chunk,
			"lecture_id":  meta.LectureID,
			"owner_id":    meta.OwnerID,
			"chunk_index": i,
		}
		if meta.CourseID != nil {
			payload["course_id"] = *meta.CourseID
		}

		points[i] = vectorstore.Point{
			ID:   uuid.New().String(),
			Vec:  embeddings[i],
			Meta: payload,
		}
	}

	if err := x.store.Upsert(ctx, CollectionName(meta.LectureID), points); err != nil {
		return fmt.Errorf("failed to upsert chunks: %w", err)
	}

	logger.InfoContext(ctx, "lecture indexed", "lecture_id", meta.LectureID, "chunks", len(chunks))
	return nil
}

// Search embeds the query and returns the top-k records from the lecture's
// collection, ranked by descending similarity.
func (x *LectureIndex) Search(ctx context.Context, lectureID, query string, k int, filters Filters) ([]RetrievalResult, error) {
	if k <= 0 {
		k = TopK
	}

	vec, err := x.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	conditions := make(map[string]int64)
	if filters.OwnerID != nil {
		conditions["owner_id"] = *filters.OwnerID
	}
	if filters.CourseID != nil {
		conditions["course_id"] = *filters.CourseID
	}

	hits, err := x.store.Search(ctx, CollectionName(lectureID), vec, k, conditions)
	if err != nil {
		return nil, fmt.Errorf("failed to search collection: %w", err)
	}

	results := make([]RetrievalResult, 0, len(hits))
	for _, hit := range hits {
		text, _ := hit.Meta["text"].(string)
		hitLecture, _ := hit.Meta["lecture_id"].(string)
		if hitLecture == "" {
			hitLecture = lectureID
		}
		ownerID, _ := hit.Meta["owner_id"].(int64)
		courseID, _ := hit.Meta["course_id"].(int64)
		chunkIndex, _ := hit.Meta["chunk_index"].(int64)

		results = append(results, RetrievalResult{
			LectureID:  hitLecture,
			Text:       text,
			Score:      hit.Score,
			ChunkIndex: int(chunkIndex),
			OwnerID:    ownerID,
			CourseID:   courseID,
		})
	}

	return results, nil
}

// Exists reports whether the lecture's collection exists. Backend errors are
// treated as absence so callers can fall back gracefully.
func (x *LectureIndex) Exists(ctx context.Context, lectureID string) bool {
	exists, err := x.store.CollectionExists(ctx, CollectionName(lectureID))
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "collection existence check failed",
			"lecture_id", lectureID, "error", err)
		return false
	}
	return exists
}

// Destroy removes the lecture's collection. Failures are logged, never
// propagated; deleting an absent collection is not fatal.
func (x *LectureIndex) Destroy(ctx context.Context, lectureID string) {
	if err := x.store.DeleteCollection(ctx, CollectionName(lectureID)); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to delete collection",
			"lecture_id", lectureID, "error", err)
	}
}
