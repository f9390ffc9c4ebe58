package chunker

import (
	"strings"
	"testing"
)

func TestFixed_Chunk(t *testing.T) {
	c := NewFixed(10, 3)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"shorter than window", "short", []string{"short"}},
		{"exact window", "0123456789", []string{"0123456789"}},
		{
			"overlapping windows",
			"abcdefghijklmnopqrst",
			[]string{"abcdefghij", "hijklmnopq", "opqrst"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Chunk(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Chunk() returned %d chunks, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Chunk()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFixed_ChunkCoversText(t *testing.T) {
	c := NewFixed(DefaultChunkSize, DefaultOverlap)
	text := strings.Repeat("lecture content ", 500)

	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want several", len(chunks))
	}

	for i, chunk := range chunks {
		if len([]rune(chunk)) > DefaultChunkSize {
			t.Errorf("chunk %d has %d runes, exceeds size %d", i, len([]rune(chunk)), DefaultChunkSize)
		}
	}

	// Consecutive chunks share the overlap region.
	first, second := []rune(chunks[0]), []rune(chunks[1])
	tail := string(first[len(first)-DefaultOverlap:])
	head := string(second[:DefaultOverlap])
	if tail != head {
		t.Error("consecutive chunks do not overlap")
	}
}

func TestNewFixed_ClampsArguments(t *testing.T) {
	c := NewFixed(0, -5)
	if c.Size != DefaultChunkSize {
		t.Errorf("Size = %d, want default %d", c.Size, DefaultChunkSize)
	}
	if c.Overlap != 0 {
		t.Errorf("Overlap = %d, want 0", c.Overlap)
	}

	c = NewFixed(10, 50)
	if c.Overlap >= c.Size {
		t.Errorf("Overlap %d not clamped below Size %d", c.Overlap, c.Size)
	}
}

func TestBoundary_BreaksAtSentence(t *testing.T) {
	c := NewBoundary(40, 5, 10)

	// A sentence boundary sits past the minimum length within the window.
	text := "First sentence here. Second one is longer and keeps going well past the window."
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], ". ") {
		t.Errorf("first chunk %q does not end at a sentence boundary", chunks[0])
	}
}

func TestBoundary_HardCutoffWithoutBoundary(t *testing.T) {
	c := NewBoundary(20, 4, 10)

	text := strings.Repeat("x", 50)
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if len([]rune(chunks[0])) != 20 {
		t.Errorf("first chunk length = %d, want hard cutoff 20", len([]rune(chunks[0])))
	}
}

func TestBoundary_QuestionAndExclamation(t *testing.T) {
	c := NewBoundary(30, 0, 5)

	text := "Is this a question? Then an exclamation follows right here! And a trailing remainder."
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(chunks))
	}
	if !strings.HasSuffix(chunks[0], "? ") {
		t.Errorf("first chunk %q does not end after the question mark", chunks[0])
	}
}

func TestBoundary_Terminates(t *testing.T) {
	// A pathological configuration must still make progress.
	c := Boundary{Size: 10, Overlap: 9, MinLength: 1}
	text := strings.Repeat("a. ", 100)

	chunks := c.Chunk(text)
	if len(chunks) == 0 {
		t.Fatal("Chunk() returned no chunks")
	}

	var rebuilt int
	for _, chunk := range chunks {
		rebuilt += len(chunk)
	}
	if rebuilt < len(text) {
		t.Errorf("chunks cover %d bytes, text has %d", rebuilt, len(text))
	}
}

func TestBoundary_Empty(t *testing.T) {
	c := NewBoundary(SummaryChunkSize, SummaryOverlap, SummaryMinLength)
	if got := c.Chunk(""); got != nil {
		t.Errorf("Chunk(\"\") = %v, want nil", got)
	}
}
