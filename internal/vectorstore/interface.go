package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks lecturemind/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations. Each
// lecture has its own collection; creation is idempotent and deletion is
// best-effort.
type VectorStore interface {
	// EnsureCollection creates the collection with the given vector size if
	// it does not exist. Calling it for an existing collection is a no-op.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a similarity search. filters is an equality conjunction
	// over integer payload fields; a nil or empty map searches unfiltered.
	// Results come back ranked by descending similarity score.
	Search(ctx context.Context, collection string, query []float32, k int, filters map[string]int64) ([]SearchResult, error)

	// DeleteCollection removes the collection and all its points.
	DeleteCollection(ctx context.Context, collection string) error
}
