package timestamp

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Segment is one time-coded span of a transcript.
type Segment struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
	StartStr  string  `json:"start_str"`
	EndStr    string  `json:"end_str"`
}

// segmentLine matches one serialized transcript line: "[HH:MM:SS.cc - HH:MM:SS.cc] text".
var segmentLine = regexp.MustCompile(`^\[(\d{2}:\d{2}:\d{2}\.\d{2}) - (\d{2}:\d{2}:\d{2}\.\d{2})\] (.+)`)

// Parse extracts timestamped segments from a serialized transcript.
// Lines that do not match the segment format are dropped; they are not merged
// into the previous segment. Segments are returned in input order.
func Parse(transcript string) []Segment {
	var segments []Segment

	for _, line := range strings.Split(strings.TrimSpace(transcript), "\n") {
		m := segmentLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		startStr, endStr, text := m[1], m[2], m[3]
		start, err := TimeToSeconds(startStr)
		if err != nil {
			continue
		}
		end, err := TimeToSeconds(endStr)
		if err != nil {
			continue
		}

		segments = append(segments, Segment{
			StartTime: start,
			EndTime:   end,
			Text:      text,
			StartStr:  startStr,
			EndStr:    endStr,
		})
	}

	return segments
}

// TimeToSeconds converts an "HH:MM:SS.cc" string to seconds.
func TimeToSeconds(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time string %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", s, err)
	}

	secParts := strings.SplitN(parts[2], ".", 2)
	seconds, err := strconv.Atoi(secParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", s, err)
	}
	centis := 0
	if len(secParts) == 2 {
		centis, err = strconv.Atoi(secParts[1])
		if err != nil {
			return 0, fmt.Errorf("invalid centiseconds in %q: %w", s, err)
		}
	}

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(centis)/100, nil
}

// SecondsToTime converts seconds back to the "HH:MM:SS.cc" display format.
// It round-trips exactly with TimeToSeconds for centisecond-resolution inputs.
func SecondsToTime(seconds float64) string {
	totalCentis := int(math.Round(seconds * 100))
	hours := totalCentis / 360000
	minutes := (totalCentis % 360000) / 6000
	secs := (totalCentis % 6000) / 100
	centis := totalCentis % 100

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, secs, centis)
}

// FormatForVideo formats seconds as a compact player-jump string such as
// "1h2m3s". No zero padding, unlike the SecondsToTime display form.
func FormatForVideo(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Match finds the first segment whose text contains the chunk text or is
// contained by it. The containment check runs in both directions and the scan
// stops at the first hit. Known limitation: when chunk text recurs verbatim
// elsewhere in the transcript the match may land on the wrong occurrence;
// position is not used to disambiguate.
func Match(chunkText string, segments []Segment) (Segment, bool) {
	trimmed := strings.TrimSpace(chunkText)
	for _, seg := range segments {
		if strings.Contains(seg.Text, trimmed) || strings.Contains(chunkText, strings.TrimSpace(seg.Text)) {
			return seg, true
		}
	}
	return Segment{}, false
}

// FindRelevant scores segments by word overlap with the query and returns up
// to max segments, best first. Segments with no overlapping words are omitted.
func FindRelevant(query string, segments []Segment, max int) []Segment {
	queryWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(query)) {
		queryWords[w] = struct{}{}
	}

	type scored struct {
		seg     Segment
		overlap int
	}
	var candidates []scored
	for _, seg := range segments {
		overlap := 0
		seen := make(map[string]struct{})
		for _, w := range strings.Fields(strings.ToLower(seg.Text)) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			if _, ok := queryWords[w]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			candidates = append(candidates, scored{seg: seg, overlap: overlap})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})

	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	result := make([]Segment, len(candidates))
	for i, c := range candidates {
		result[i] = c.seg
	}
	return result
}

// ContextWindow returns the segment at index together with up to window
// segments on each side, clamped to the transcript bounds.
func ContextWindow(segments []Segment, index, window int) []Segment {
	if index < 0 || index >= len(segments) {
		return nil
	}
	start := index - window
	if start < 0 {
		start = 0
	}
	end := index + window + 1
	if end > len(segments) {
		end = len(segments)
	}
	return segments[start:end]
}
