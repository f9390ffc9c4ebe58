package workflow

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever.go -package=mocks lecturemind/internal/workflow Retriever

import (
	"context"

	"lecturemind/internal/index"
)

// Retriever is the slice of the vector index the workflows depend on.
// *index.LectureIndex satisfies it.
type Retriever interface {
	// Exists reports whether the lecture has an indexed collection.
	Exists(ctx context.Context, lectureID string) bool
	// Search returns the top-k chunks for a query against one lecture.
	Search(ctx context.Context, lectureID, query string, k int, filters index.Filters) ([]index.RetrievalResult, error)
}
