// Package transcribe defines the speech-to-text collaborator boundary. The
// actual transcription engine runs out of process; the core consumes its
// output as timed segments and serializes them into the timestamp-line
// transcript format the rest of the system parses.
package transcribe

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcriber.go -package=mocks lecturemind/internal/transcribe Transcriber

import (
	"context"
	"fmt"
	"strings"

	"lecturemind/internal/timestamp"
)

// TimedText is one span of recognized speech.
type TimedText struct {
	Start float64
	End   float64
	Text  string
}

// Result is a full transcription of one media file.
type Result struct {
	Segments []TimedText
	Duration float64
}

// Transcriber converts a media file into timed text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (Result, error)
}

// Serialize renders the result as "[HH:MM:SS.cc - HH:MM:SS.cc] text" lines,
// one per segment. The output round-trips through timestamp.Parse.
func (r Result) Serialize() string {
	lines := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s - %s] %s",
			timestamp.SecondsToTime(seg.Start), timestamp.SecondsToTime(seg.End), text))
	}
	return strings.Join(lines, "\n")
}
