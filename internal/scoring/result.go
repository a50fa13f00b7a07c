package scoring

import "math"

// Request carries a single scoring invocation's input. JobDescription is
// optional and currently not weighted by the local heuristic; remote
// providers forward it on the wire.
type Request struct {
	Text           string
	JobDescription string
}

// Breakdown holds the four named sub-scores. Each is clamped to [0,100]
// independently before any weighting happens. ContentQuality is reported
// but intentionally excluded from the weighted aggregate.
type Breakdown struct {
	KeywordMatch   int `json:"keyword_match"`
	Formatting     int `json:"formatting"`
	Structure      int `json:"structure"`
	ContentQuality int `json:"content_quality"`
}

// Result is the engine's sole output. It is a value object created fresh
// per invocation and never mutated after construction.
type Result struct {
	Score           int        `json:"score"`
	Suggestions     []string   `json:"suggestions"`
	Keywords        []string   `json:"keywords"`
	MissingKeywords []string   `json:"missing_keywords"`
	Breakdown       *Breakdown `json:"breakdown,omitempty"`

	// Provider records which strategy produced the result. It is set by
	// the orchestrator for observability only and never consulted by
	// scoring logic.
	Provider string `json:"provider,omitempty"`
}

// Clone returns a deep copy so callers can hold results without sharing
// slices with the engine.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := &Result{
		Score:           r.Score,
		Suggestions:     append([]string(nil), r.Suggestions...),
		Keywords:        append([]string(nil), r.Keywords...),
		MissingKeywords: append([]string(nil), r.MissingKeywords...),
		Provider:        r.Provider,
	}
	if r.Breakdown != nil {
		b := *r.Breakdown
		out.Breakdown = &b
	}
	return out
}

// MaxMissingKeywords caps the missing keyword list to a small display count.
const MaxMissingKeywords = 5

// Clamp bounds a score or sub-score to [0,100]. Provider adapters use
// it on upstream values before they enter a Result.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func roundWeighted(keywordMatch, formatting, structure int) int {
	weighted := 0.4*float64(keywordMatch) + 0.3*float64(formatting) + 0.3*float64(structure)
	return Clamp(int(math.Round(weighted)))
}
