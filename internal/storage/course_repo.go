package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_course_store.go -package=mocks lecturemind/internal/storage CourseStore

import (
	"context"
	"database/sql"
	"fmt"
)

// CourseStore defines the interface for course storage operations.
type CourseStore interface {
	// Insert creates a course and returns its id.
	Insert(ctx context.Context, course *CourseRecord) (int64, error)
	// GetByID gets a course by id. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id int64) (*CourseRecord, error)
	// ListByOwner returns all courses owned by a user, ordered by name.
	ListByOwner(ctx context.Context, ownerID int64) ([]*CourseRecord, error)
}

// CourseRepo provides methods for course operations.
// It implements the CourseStore interface.
type CourseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepo.
func NewCourseRepo(db *sql.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// Insert creates a course and returns its id.
func (r *CourseRepo) Insert(ctx context.Context, course *CourseRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO courses (owner_id, name) VALUES (?, ?)",
		course.OwnerID, course.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read course id: %w", err)
	}
	return id, nil
}

// GetByID gets a course by id. Returns nil and ErrNotFound if not found.
func (r *CourseRepo) GetByID(ctx context.Context, id int64) (*CourseRecord, error) {
	var course CourseRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM courses WHERE id = ?", id,
	).Scan(&course.ID, &course.OwnerID, &course.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query course: %w", err)
	}

	course.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return &course, nil
}

// ListByOwner returns all courses owned by a user, ordered by name.
func (r *CourseRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*CourseRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, owner_id, name, created_at FROM courses WHERE owner_id = ? ORDER BY name", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []*CourseRecord
	for rows.Next() {
		var course CourseRecord
		var createdAtStr string
		if err := rows.Scan(&course.ID, &course.OwnerID, &course.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		course.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}
