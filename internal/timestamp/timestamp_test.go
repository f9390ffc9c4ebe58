package timestamp

import (
	"testing"
)

func TestParse(t *testing.T) {
	transcript := "[00:00:01.00 - 00:00:02.50] Hello\ngarbage\n[00:00:02.50 - 00:00:03.00] World"

	segments := Parse(transcript)
	if len(segments) != 2 {
		t.Fatalf("Parse() returned %d segments, want 2", len(segments))
	}

	first := segments[0]
	if first.StartTime != 1.0 || first.EndTime != 2.5 {
		t.Errorf("first segment times = (%v, %v), want (1, 2.5)", first.StartTime, first.EndTime)
	}
	if first.Text != "Hello" {
		t.Errorf("first segment text = %q, want %q", first.Text, "Hello")
	}
	if first.StartStr != "00:00:01.00" || first.EndStr != "00:00:02.50" {
		t.Errorf("first segment strings = (%q, %q)", first.StartStr, first.EndStr)
	}

	if segments[1].Text != "World" {
		t.Errorf("second segment text = %q, want %q", segments[1].Text, "World")
	}
}

func TestParse_OrderPreserved(t *testing.T) {
	transcript := "[00:00:05.00 - 00:00:06.00] later\n[00:00:01.00 - 00:00:02.00] earlier"

	segments := Parse(transcript)
	if len(segments) != 2 {
		t.Fatalf("Parse() returned %d segments, want 2", len(segments))
	}
	// Input order is preserved, not re-sorted by start time.
	if segments[0].Text != "later" || segments[1].Text != "earlier" {
		t.Errorf("segments out of input order: %q, %q", segments[0].Text, segments[1].Text)
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") returned %d segments, want 0", len(got))
	}
	if got := Parse("no timestamps here\nat all"); len(got) != 0 {
		t.Errorf("Parse() of plain text returned %d segments, want 0", len(got))
	}
}

func TestTimeToSeconds(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"00:00:00.00", 0, false},
		{"00:00:02.50", 2.5, false},
		{"00:01:05.25", 65.25, false},
		{"01:01:05.00", 3665, false},
		{"10:30:45.99", 37845.99, false},
		{"bogus", 0, true},
		{"aa:bb:cc.dd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TimeToSeconds(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("TimeToSeconds(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("TimeToSeconds(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("TimeToSeconds(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSecondsToTime_RoundTrip(t *testing.T) {
	// Every well-formed HH:MM:SS.cc string must survive the round trip
	// exactly, including centisecond values that are not representable as
	// binary floats.
	inputs := []string{
		"00:00:00.00",
		"00:00:00.01",
		"00:00:00.07",
		"00:00:00.29",
		"00:00:02.50",
		"00:00:59.99",
		"00:59:59.99",
		"01:00:00.00",
		"12:34:56.78",
		"99:59:59.99",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			sec, err := TimeToSeconds(s)
			if err != nil {
				t.Fatalf("TimeToSeconds(%q) error: %v", s, err)
			}
			if got := SecondsToTime(sec); got != s {
				t.Errorf("SecondsToTime(TimeToSeconds(%q)) = %q", s, got)
			}
		})
	}
}

func TestFormatForVideo(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0s"},
		{5, "5s"},
		{65, "1m5s"},
		{3665, "1h1m5s"},
		{3600, "1h0m0s"},
		{59.9, "59s"},
	}

	for _, tt := range tests {
		if got := FormatForVideo(tt.seconds); got != tt.want {
			t.Errorf("FormatForVideo(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	segments := []Segment{
		{StartTime: 0, EndTime: 1, Text: "the quick brown fox", StartStr: "00:00:00.00", EndStr: "00:00:01.00"},
		{StartTime: 1, EndTime: 2, Text: "jumps over the lazy dog", StartStr: "00:00:01.00", EndStr: "00:00:02.00"},
	}

	tests := []struct {
		name     string
		chunk    string
		wantText string
		wantOK   bool
	}{
		{"chunk inside segment", "quick brown", "the quick brown fox", true},
		{"segment inside chunk", "well jumps over the lazy dog indeed", "jumps over the lazy dog", true},
		{"first match wins", "the quick brown fox jumps over the lazy dog", "the quick brown fox", true},
		{"no match", "entirely unrelated text", "", false},
		{"whitespace trimmed", "  quick brown  ", "the quick brown fox", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := Match(tt.chunk, segments)
			if ok != tt.wantOK {
				t.Fatalf("Match() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && seg.Text != tt.wantText {
				t.Errorf("Match() segment text = %q, want %q", seg.Text, tt.wantText)
			}
		})
	}
}

func TestFindRelevant(t *testing.T) {
	segments := []Segment{
		{Text: "introduction to neural networks"},
		{Text: "neural networks and deep learning basics"},
		{Text: "completely unrelated administrative notes"},
	}

	got := FindRelevant("neural networks", segments, 5)
	if len(got) != 2 {
		t.Fatalf("FindRelevant() returned %d segments, want 2", len(got))
	}
	// The two-word overlap segments both score 2; stable order keeps input order.
	if got[0].Text != "introduction to neural networks" {
		t.Errorf("FindRelevant() first = %q", got[0].Text)
	}

	if got := FindRelevant("quantum", segments, 5); len(got) != 0 {
		t.Errorf("FindRelevant() with no overlap returned %d segments", len(got))
	}

	if got := FindRelevant("neural networks", segments, 1); len(got) != 1 {
		t.Errorf("FindRelevant() with max 1 returned %d segments", len(got))
	}
}

func TestContextWindow(t *testing.T) {
	segments := []Segment{
		{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"},
	}

	tests := []struct {
		name   string
		index  int
		window int
		want   []string
	}{
		{"middle", 2, 1, []string{"b", "c", "d"}},
		{"clamped start", 0, 2, []string{"a", "b", "c"}},
		{"clamped end", 4, 2, []string{"c", "d", "e"}},
		{"out of range", 9, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextWindow(segments, tt.index, tt.window)
			if len(got) != len(tt.want) {
				t.Fatalf("ContextWindow() returned %d segments, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Text != w {
					t.Errorf("ContextWindow()[%d] = %q, want %q", i, got[i].Text, w)
				}
			}
		})
	}
}
