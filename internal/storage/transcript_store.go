package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcript_store.go -package=mocks lecturemind/internal/storage TranscriptStore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TranscriptStore defines the interface for transcript persistence.
// Transcripts are large and append-only, so they live on disk next to the
// database rather than inside it.
type TranscriptStore interface {
	// Save writes a lecture's serialized transcript and duration.
	Save(ctx context.Context, lectureID, transcript string, duration float64) error
	// LoadTranscript reads a lecture's transcript. Returns ErrNotFound if absent.
	LoadTranscript(ctx context.Context, lectureID string) (string, error)
	// LoadDuration reads a lecture's recording length in seconds.
	// Returns ErrNotFound if absent.
	LoadDuration(ctx context.Context, lectureID string) (float64, error)
	// Delete removes a lecture's transcript files. Missing files are ignored.
	Delete(ctx context.Context, lectureID string) error
}

// FileTranscriptStore stores transcripts as plain text files in a directory:
// {id}_transcript.txt for the transcript, {id}_duration.txt for the duration.
type FileTranscriptStore struct {
	dir string
}

// NewFileTranscriptStore creates a FileTranscriptStore rooted at dir,
// creating the directory if needed.
func NewFileTranscriptStore(dir string) (*FileTranscriptStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create transcript directory: %w", err)
	}
	return &FileTranscriptStore{dir: dir}, nil
}

func (s *FileTranscriptStore) transcriptPath(lectureID string) string {
	return filepath.Join(s.dir, lectureID+"_transcript.txt")
}

func (s *FileTranscriptStore) durationPath(lectureID string) string {
	return filepath.Join(s.dir, lectureID+"_duration.txt")
}

// Save writes a lecture's serialized transcript and duration.
func (s *FileTranscriptStore) Save(_ context.Context, lectureID, transcript string, duration float64) error {
	if err := os.WriteFile(s.transcriptPath(lectureID), []byte(transcript), 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	durStr := strconv.FormatFloat(duration, 'f', 2, 64)
	if err := os.WriteFile(s.durationPath(lectureID), []byte(durStr), 0644); err != nil {
		return fmt.Errorf("failed to write duration: %w", err)
	}
	return nil
}

// LoadTranscript reads a lecture's transcript. Returns ErrNotFound if absent.
func (s *FileTranscriptStore) LoadTranscript(_ context.Context, lectureID string) (string, error) {
	data, err := os.ReadFile(s.transcriptPath(lectureID))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}
	return string(data), nil
}

// LoadDuration reads a lecture's recording length in seconds.
// Returns ErrNotFound if absent.
func (s *FileTranscriptStore) LoadDuration(_ context.Context, lectureID string) (float64, error) {
	data, err := os.ReadFile(s.durationPath(lectureID))
	if os.IsNotExist(err) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read duration: %w", err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return duration, nil
}

// Delete removes a lecture's transcript files. Missing files are ignored.
func (s *FileTranscriptStore) Delete(_ context.Context, lectureID string) error {
	for _, path := range []string{s.transcriptPath(lectureID), s.durationPath(lectureID)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
