// Package ingest turns uploaded recordings into searchable lectures:
// transcription, transcript persistence, vector indexing, and summary
// generation, finishing with the relational lecture record.
package ingest

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_indexer.go -package=mocks lecturemind/internal/ingest Indexer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lecturemind/internal/chunker"
	"lecturemind/internal/contextutil"
	"lecturemind/internal/index"
	"lecturemind/internal/service"
	"lecturemind/internal/storage"
	"lecturemind/internal/transcribe"
	"lecturemind/internal/workflow"
)

// allowedExtensions are the media types accepted for upload.
var allowedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

// MaxUploadSize is the largest accepted media file (1GB).
const MaxUploadSize = 1 << 30

// Indexer is the slice of the vector index the pipeline depends on.
// *index.LectureIndex satisfies it.
type Indexer interface {
	Create(ctx context.Context, lectureID string) error
	Index(ctx context.Context, chunks []string, meta index.ChunkMeta) error
}

// Upload describes one recording to ingest.
type Upload struct {
	OwnerID  int64
	CourseID *int64
	Filename string
	Title    string // optional; derived from Filename when empty
	Source   io.Reader
}

// Pipeline ingests recordings.
type Pipeline struct {
	transcriber transcribe.Transcriber
	transcripts storage.TranscriptStore
	lectures    storage.LectureStore
	indexer     Indexer
	summarizer  *workflow.Summarizer
	chunks      chunker.Fixed
	mediaDir    string
}

// NewPipeline creates a Pipeline. Media files are stored under mediaDir.
func NewPipeline(
	transcriber transcribe.Transcriber,
	transcripts storage.TranscriptStore,
	lectures storage.LectureStore,
	indexer Indexer,
	summarizer *workflow.Summarizer,
	mediaDir string,
) *Pipeline {
	return &Pipeline{
		transcriber: transcriber,
		transcripts: transcripts,
		lectures:    lectures,
		indexer:     indexer,
		summarizer:  summarizer,
		chunks:      chunker.NewFixed(chunker.DefaultChunkSize, chunker.DefaultOverlap),
		mediaDir:    mediaDir,
	}
}

// ValidExtension reports whether the filename carries an accepted media
// extension.
func ValidExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Ingest processes one upload end to end and returns the stored lecture
// record. Transcription failure aborts; indexing or summarization failure
// degrades (the lecture still lands, searchable by transcript only).
func (p *Pipeline) Ingest(ctx context.Context, up Upload) (*storage.LectureRecord, error) {
	if !ValidExtension(up.Filename) {
		return nil, fmt.Errorf("%w: unsupported media type %q", service.ErrInvalidInput, filepath.Ext(up.Filename))
	}

	lectureID := uuid.New().String()
	mediaPath := filepath.Join(p.mediaDir, lectureID+"_"+filepath.Base(up.Filename))

	if err := writeMedia(mediaPath, up.Source); err != nil {
		return nil, err
	}

	record, err := p.process(ctx, lectureID, mediaPath, up)
	if err != nil {
		// Remove the media file so a failed ingest leaves nothing behind
		_ = os.Remove(mediaPath)
		return nil, err
	}
	return record, nil
}

// IngestFile ingests a media file already on disk (the drop-dir watcher
// path).
func (p *Pipeline) IngestFile(ctx context.Context, path string, ownerID int64) (*storage.LectureRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return p.Ingest(ctx, Upload{
		OwnerID:  ownerID,
		Filename: filepath.Base(path),
		Source:   file,
	})
}

func (p *Pipeline) process(ctx context.Context, lectureID, mediaPath string, up Upload) (*storage.LectureRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	result, err := p.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: transcription failed: %v", service.ErrExternalService, err)
	}

	transcript := result.Serialize()
	if err := p.transcripts.Save(ctx, lectureID, transcript, result.Duration); err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	// Index the transcript; a vector-store outage degrades to
	// transcript-only QA rather than failing the upload.
	chunks := p.chunks.Chunk(transcript)
	if err := p.indexLecture(ctx, lectureID, chunks, up); err != nil {
		logger.WarnContext(ctx, "lecture indexing failed, continuing without vectors",
			"lecture_id", lectureID, "error", err)
	}

	// Pre-compute the summary for quick access; same degradation rule.
	summary := ""
	if transcript != "" {
		summary, err = p.summarizer.Summarize(ctx, transcript)
		if err != nil {
			logger.WarnContext(ctx, "summary generation failed, continuing without summary",
				"lecture_id", lectureID, "error", err)
			summary = ""
		}
	}

	title := up.Title
	if strings.TrimSpace(title) == "" {
		title = TitleFromFilename(up.Filename)
	}

	record := &storage.LectureRecord{
		ID:         lectureID,
		OwnerID:    up.OwnerID,
		CourseID:   up.CourseID,
		Title:      title,
		Filename:   up.Filename,
		Duration:   result.Duration,
		Collection: index.CollectionName(lectureID),
		Summary:    summary,
	}
	if err := p.lectures.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store lecture record: %w", err)
	}

	logger.InfoContext(ctx, "lecture ingested",
		"lecture_id", lectureID, "owner_id", up.OwnerID,
		"duration", result.Duration, "chunks", len(chunks))
	return record, nil
}

func (p *Pipeline) indexLecture(ctx context.Context, lectureID string, chunks []string, up Upload) error {
	if len(chunks) == 0 {
		return nil
	}
	if err := p.indexer.Create(ctx, lectureID); err != nil {
		return err
	}
	return p.indexer.Index(ctx, chunks, index.ChunkMeta{
		LectureID: lectureID,
		OwnerID:   up.OwnerID,
		CourseID:  up.CourseID,
	})
}

// TitleFromFilename derives a display title: the part before the first dot,
// with underscores and dashes as spaces.
func TitleFromFilename(filename string) string {
	name := filename
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

func writeMedia(path string, src io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create media file: %w", err)
	}

	_, err = io.Copy(out, io.LimitReader(src, MaxUploadSize))
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write media file: %w", err)
	}
	return nil
}
