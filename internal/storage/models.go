package storage

import "time"

// LectureRecord represents an ingested lecture recording in the database.
type LectureRecord struct {
	ID         string  // UUID, also names the vector collection suffix
	OwnerID    int64   // User who uploaded the recording
	CourseID   *int64  // Optional foreign key to courses.id
	Title      string  // Display title, defaults to the upload filename
	Filename   string  // Original media filename
	Duration   float64 // Recording length in seconds
	Collection string  // Vector collection name
	Summary    string  // Cached generated summary, empty until produced
	CreatedAt  time.Time
}

// CourseRecord groups lectures under a named course.
type CourseRecord struct {
	ID        int64
	OwnerID   int64
	Name      string
	CreatedAt time.Time
}
