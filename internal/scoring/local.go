package scoring

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// LocalName is the provider name reported by the heuristic scorer.
const LocalName = "local"

// LocalScorer computes a deterministic, offline score from resume text
// alone. It is pure computation with no suspension points and is the
// orchestrator's guaranteed terminal fallback: Score never returns a
// non-nil error for any string input.
type LocalScorer struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewLocalScorer creates the heuristic scorer backed by the given catalog.
func NewLocalScorer(catalog *Catalog, logger *zap.Logger) *LocalScorer {
	if catalog == nil {
		catalog = Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalScorer{catalog: catalog, logger: logger}
}

func (s *LocalScorer) Name() string { return LocalName }

// Score runs the full heuristic breakdown. The job description is
// accepted but not yet weighted into the algorithm.
func (s *LocalScorer) Score(_ context.Context, req Request) (*Result, error) {
	normalized := strings.ToLower(req.Text)
	wordCount := len(strings.Fields(normalized))

	keywords := make([]string, 0, s.catalog.Len())
	missing := make([]string, 0, MaxMissingKeywords)
	for _, term := range s.catalog.Keywords() {
		if strings.Contains(normalized, term) {
			keywords = append(keywords, term)
			continue
		}
		if len(missing) < MaxMissingKeywords {
			missing = append(missing, term)
		}
	}

	// Integer division truncates: 7 of 22 scores 31, not 32. Only the
	// final weighted aggregate rounds.
	keywordMatch := 0
	if total := s.catalog.Len(); total > 0 {
		keywordMatch = 100 * len(keywords) / total
	}

	formatting := 100
	if strings.Contains(normalized, "table") || strings.Contains(normalized, "image") {
		formatting -= 30
	}
	if wordCount > 2000 {
		formatting -= 20
	}
	if wordCount < 200 {
		formatting -= 15
	}

	structure := 100
	if !strings.Contains(normalized, "email") && !strings.Contains(normalized, "@") {
		structure -= 20
	}
	if !strings.Contains(normalized, "experience") {
		structure -= 25
	}
	if !strings.Contains(normalized, "education") {
		structure -= 20
	}
	if !strings.Contains(normalized, "skills") {
		structure -= 20
	}

	breakdown := &Breakdown{
		KeywordMatch:   Clamp(keywordMatch),
		Formatting:     Clamp(formatting),
		Structure:      Clamp(structure),
		ContentQuality: Clamp(75),
	}

	// ContentQuality is deliberately left out of the weighted aggregate.
	score := roundWeighted(breakdown.KeywordMatch, breakdown.Formatting, breakdown.Structure)

	s.logger.Debug("local heuristic computed",
		zap.Int("score", score),
		zap.Int("keyword_match", breakdown.KeywordMatch),
		zap.Int("formatting", breakdown.Formatting),
		zap.Int("structure", breakdown.Structure),
		zap.Int("word_count", wordCount),
	)

	return &Result{
		Score:           score,
		Suggestions:     Suggest(score),
		Keywords:        keywords,
		MissingKeywords: missing,
		Breakdown:       breakdown,
	}, nil
}
