package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lecture_store.go -package=mocks lecturemind/internal/storage LectureStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// LectureStore defines the interface for lecture storage operations.
type LectureStore interface {
	// Insert stores a new lecture record.
	Insert(ctx context.Context, lecture *LectureRecord) error
	// GetByID gets a lecture by id. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*LectureRecord, error)
	// ListByOwner returns all lectures owned by a user, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]*LectureRecord, error)
	// ListIDsByOwner returns the ids of all lectures owned by a user.
	ListIDsByOwner(ctx context.Context, ownerID int64) ([]string, error)
	// UpdateSummary stores a generated summary for a lecture.
	UpdateSummary(ctx context.Context, id, summary string) error
	// UpdateDetails changes a lecture's title and course. Nil fields are
	// left unchanged. Returns ErrNotFound if the lecture does not exist or
	// belongs to another user.
	UpdateDetails(ctx context.Context, id string, ownerID int64, title *string, courseID *int64) (*LectureRecord, error)
	// VerifyOwnership reports whether the lecture exists and belongs to the user.
	VerifyOwnership(ctx context.Context, id string, ownerID int64) (bool, error)
	// Delete removes a lecture record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// LectureRepo provides methods for lecture operations.
// It implements the LectureStore interface.
type LectureRepo struct {
	db *sql.DB
}

// NewLectureRepo creates a new LectureRepo.
func NewLectureRepo(db *sql.DB) *LectureRepo {
	return &LectureRepo{db: db}
}

// Insert stores a new lecture record.
func (r *LectureRepo) Insert(ctx context.Context, lecture *LectureRecord) error {
	var courseID sql.NullInt64
	if lecture.CourseID != nil {
		courseID = sql.NullInt64{Int64: *lecture.CourseID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lectures (id, owner_id, course_id, title, filename, duration, collection, summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		lecture.ID, lecture.OwnerID, courseID, lecture.Title, lecture.Filename,
		lecture.Duration, lecture.Collection, lecture.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lecture: %w", err)
	}
	return nil
}

// GetByID gets a lecture by id. Returns nil and ErrNotFound if not found.
func (r *LectureRepo) GetByID(ctx context.Context, id string) (*LectureRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, course_id, title, filename, duration, collection, summary, created_at
		 FROM lectures WHERE id = ?`, id)

	lecture, err := scanLecture(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query lecture: %w", err)
	}
	return lecture, nil
}

// ListByOwner returns all lectures owned by a user, newest first.
func (r *LectureRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*LectureRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, course_id, title, filename, duration, collection, summary, created_at
		 FROM lectures WHERE owner_id = ? ORDER BY created_at DESC, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lectures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lectures []*LectureRecord
	for rows.Next() {
		lecture, err := scanLecture(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lecture: %w", err)
		}
		lectures = append(lectures, lecture)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lectures: %w", err)
	}
	return lectures, nil
}

// ListIDsByOwner returns the ids of all lectures owned by a user.
func (r *LectureRepo) ListIDsByOwner(ctx context.Context, ownerID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id FROM lectures WHERE owner_id = ? ORDER BY created_at DESC, id", ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lecture ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan lecture id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lecture ids: %w", err)
	}
	return ids, nil
}

// UpdateSummary stores a generated summary for a lecture.
func (r *LectureRepo) UpdateSummary(ctx context.Context, id, summary string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE lectures SET summary = ? WHERE id = ?", summary, id)
	if err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDetails changes a lecture's title and course. Nil fields are left
// unchanged. Returns ErrNotFound if the lecture does not exist or belongs to
// another user.
func (r *LectureRepo) UpdateDetails(ctx context.Context, id string, ownerID int64, title *string, courseID *int64) (*LectureRecord, error) {
	if title != nil || courseID != nil {
		query := "UPDATE lectures SET "
		var args []any
		if title != nil {
			query += "title = ?"
			args = append(args, *title)
		}
		if courseID != nil {
			if title != nil {
				query += ", "
			}
			query += "course_id = ?"
			args = append(args, sql.NullInt64{Int64: *courseID, Valid: true})
		}
		query += " WHERE id = ? AND owner_id = ?"
		args = append(args, id, ownerID)

		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to update lecture: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	lecture, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lecture.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return lecture, nil
}

// VerifyOwnership reports whether the lecture exists and belongs to the user.
func (r *LectureRepo) VerifyOwnership(ctx context.Context, id string, ownerID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM lectures WHERE id = ? AND owner_id = ?", id, ownerID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to verify ownership: %w", err)
	}
	return count > 0, nil
}

// Delete removes a lecture record. Returns ErrNotFound if absent.
func (r *LectureRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM lectures WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete lecture: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLecture(s scanner) (*LectureRecord, error) {
	var lecture LectureRecord
	var courseID sql.NullInt64
	var summary sql.NullString
	var createdAtStr string

	err := s.Scan(&lecture.ID, &lecture.OwnerID, &courseID, &lecture.Title,
		&lecture.Filename, &lecture.Duration, &lecture.Collection, &summary, &createdAtStr)
	if err != nil {
		return nil, err
	}

	if courseID.Valid {
		lecture.CourseID = &courseID.Int64
	}
	lecture.Summary = summary.String

	lecture.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	return &lecture, nil
}

// parseTimestamp handles the DATETIME formats SQLite may emit.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
