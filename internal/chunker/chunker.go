package chunker

import "strings"

// Defaults for the fixed-width strategy used when indexing transcripts.
const (
	DefaultChunkSize = 800
	DefaultOverlap   = 150
)

// Defaults for the boundary-seeking strategy used when feeding transcript
// text to the generation model directly.
const (
	SummaryChunkSize = 3500
	SummaryOverlap   = 500
	SummaryMinLength = 1000
)

// Chunker splits text into bounded, overlapping chunks.
type Chunker interface {
	Chunk(text string) []string
}

// Fixed produces fixed-width windows with a fixed overlap. Window boundaries
// ignore sentence structure; overlap preserves context across adjacent chunks
// for embedding.
type Fixed struct {
	Size    int
	Overlap int
}

// NewFixed creates a fixed-width chunker. Non-positive size falls back to the
// default; overlap is clamped below size so every step makes progress.
func NewFixed(size, overlap int) Fixed {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return Fixed{Size: size, Overlap: overlap}
}

// Chunk splits text into windows of Size runes, each overlapping the previous
// by Overlap runes.
func (c Fixed) Chunk(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.Size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end - c.Overlap
	}
	return chunks
}

// Boundary produces overlapping windows that prefer to break at a sentence
// boundary (". ", "? ", "! ") near the end of the window. When no boundary
// falls past MinLength the hard cutoff at Size is used instead.
type Boundary struct {
	Size      int
	Overlap   int
	MinLength int
}

// NewBoundary creates a boundary-seeking chunker with the summarization
// defaults for any non-positive parameter.
func NewBoundary(size, overlap, minLength int) Boundary {
	if size <= 0 {
		size = SummaryChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	if minLength <= 0 || minLength >= size {
		minLength = SummaryMinLength
	}
	return Boundary{Size: size, Overlap: overlap, MinLength: minLength}
}

var sentenceBoundaries = []string{". ", "? ", "! "}

// Chunk splits text into windows of at most Size runes, breaking after the
// last sentence boundary in the window when one lies past MinLength, and
// overlapping consecutive windows by Overlap runes.
func (c Boundary) Chunk(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		prev := start
		end := start + c.Size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}

		window := string(runes[start:end])
		breakPoint := -1
		for _, b := range sentenceBoundaries {
			if idx := strings.LastIndex(window, b); idx > breakPoint {
				breakPoint = idx
			}
		}
		// The boundary index is in bytes within the window; windows are
		// re-sliced as strings so byte arithmetic is safe here.
		if breakPoint > c.MinLength {
			chunks = append(chunks, window[:breakPoint+2])
			start += len([]rune(window[:breakPoint+2]))
		} else {
			chunks = append(chunks, window)
			start = end
		}
		start -= c.Overlap
		if start <= prev {
			// Overlap must never swallow the whole step.
			start = prev + 1
		}
	}
	return chunks
}
