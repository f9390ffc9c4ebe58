package workflow

// Status records how a workflow run concluded. Degraded means a fallback
// path was taken but a usable result was still produced.
type Status int

const (
	StatusOK Status = iota
	StatusDegraded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source is a citation tying an answer back to a moment in the recording.
type Source struct {
	Text           string  `json:"text"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	StartStr       string  `json:"start_str"`
	EndStr         string  `json:"end_str"`
	VideoTimestamp string  `json:"video_timestamp"`
}

// EmptyCitation is the placeholder used when no transcript segment matches a
// retrieved chunk. Every retrieved chunk yields exactly one citation, matched
// or placeholder.
func EmptyCitation() Source {
	return Source{
		StartTime:      0,
		EndTime:        0,
		StartStr:       "00:00:00.00",
		EndStr:         "00:00:00.00",
		VideoTimestamp: "0s",
	}
}

// QAState carries a single-lecture question through the QA pipeline.
type QAState struct {
	LectureID     string
	Question      string
	Transcript    string
	ContextChunks []string
	Answer        string
	Sources       []Source
	Error         string
	Status        Status
}

// SearchResult is one scored hit from the multi-lecture search, joined with
// its transcript citation.
type SearchResult struct {
	LectureID      string  `json:"lecture_id"`
	Text           string  `json:"text"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	StartStr       string  `json:"start_str"`
	EndStr         string  `json:"end_str"`
	VideoTimestamp string  `json:"video_timestamp"`
	Score          float32 `json:"relevance_score"`
	Scored         bool    `json:"-"`
}

// SearchState carries a query through the multi-lecture search pipeline.
type SearchState struct {
	Query              string
	LectureIDs         []string
	Results            []SearchResult
	ConsolidatedAnswer string
	Error              string
	Status             Status
}

// KeyMoment is a navigable point of interest in a recording.
type KeyMoment struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

// SummaryState carries a lecture through the summarization pipeline. The
// three output fields are written by independent stages.
type SummaryState struct {
	LectureID  string
	Transcript string
	Summary    string
	KeyTopics  []string
	KeyMoments []KeyMoment
	Error      string
	Status     Status
}
