package gemini

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Scorer derives an ATS score from a secondary summarization call: it
// asks Gemini for a short summary of the resume and then re-applies a
// smaller heuristic over the summary and the original text, producing a
// synthetic score in [70,100].
type Scorer struct {
	generator contentGenerator
	catalog   *scoring.Catalog
	logger    *zap.Logger
	maxLogLen int
}

const (
	defaultMaxLogLength = 200

	baseScore = 70

	// A summary shorter than this is treated as trivial.
	minSummaryRunes = 40

	promptTemplate = "Summarize the following resume in at most three sentences. " +
		"Respond with the summary only, no preamble.\n\nResume:\n%TEXT%"
)

// technicalSubset is the small keyword set the summary heuristic rewards.
var technicalSubset = []string{
	"python",
	"java",
	"javascript",
	"go",
	"react",
	"sql",
	"aws",
	"docker",
	"kubernetes",
	"git",
}

// NewScorer creates the summary-based provider.
func NewScorer(generator contentGenerator, catalog *scoring.Catalog, logger *zap.Logger, maxLogLength int) *Scorer {
	if catalog == nil {
		catalog = scoring.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Scorer{
		generator: generator,
		catalog:   catalog,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (s *Scorer) Name() string { return "gemini" }

// Score requests a summary and applies the secondary heuristic. No
// internal retries; any upstream failure is reported to the orchestrator.
func (s *Scorer) Score(ctx context.Context, req scoring.Request) (*scoring.Result, error) {
	prompt := strings.ReplaceAll(promptTemplate, "%TEXT%", req.Text)

	s.logger.Debug("gemini summary request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	summary, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderUnavailable,
			errors.Wrap(err, "generate resume summary"),
		)
	}

	s.logger.Debug("gemini summary response",
		zap.Int("response_length", utf8.RuneCountInString(summary)),
		zap.String("response_preview", utils.TruncateForLog(summary, s.maxLogLen)),
	)

	normalized := strings.ToLower(req.Text)

	score := baseScore
	if utf8.RuneCountInString(strings.TrimSpace(summary)) >= minSummaryRunes {
		score += 10
	}

	matched := make([]string, 0, len(technicalSubset))
	for _, term := range technicalSubset {
		if strings.Contains(normalized, term) {
			matched = append(matched, term)
		}
	}
	if len(matched) > 0 {
		score += 10
	}

	if containsAny(normalized, s.catalog.ActionVerbs()) {
		score += 10
	}

	if score > 100 {
		score = 100
	}

	return &scoring.Result{
		Score:           score,
		Suggestions:     []string{},
		Keywords:        matched,
		MissingKeywords: []string{},
	}, nil
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
