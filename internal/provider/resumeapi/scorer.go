package resumeapi

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

type resumeScorer interface {
	ScoreResume(ctx context.Context, text, jobDescription string) (map[string]any, error)
}

// Scorer adapts the hosted scoring API to the common provider contract.
// Fields the upstream omits are substituted with safe defaults instead of
// being treated as failures.
type Scorer struct {
	client resumeScorer
	logger *zap.Logger
}

// response mirrors the upstream wire shape. All fields are optional.
type response struct {
	Score           int       `json:"score"`
	Suggestions     []string  `json:"suggestions"`
	Keywords        []string  `json:"keywords"`
	MissingKeywords []string  `json:"missing_keywords"`
	Breakdown       *struct {
		KeywordMatch   int `json:"keyword_match"`
		Formatting     int `json:"formatting"`
		Structure      int `json:"structure"`
		ContentQuality int `json:"content_quality"`
	} `json:"breakdown"`
}

// NewScorer creates the REST-backed provider.
func NewScorer(client resumeScorer, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{client: client, logger: logger}
}

func (s *Scorer) Name() string { return "resume-api" }

// Score invokes the upstream API and maps its response into a Result.
func (s *Scorer) Score(ctx context.Context, req scoring.Request) (*scoring.Result, error) {
	body, err := s.client.ScoreResume(ctx, req.Text, req.JobDescription)
	if err != nil {
		return nil, err
	}

	var parsed response
	cfg := &mapstructure.DecoderConfig{
		Result:           &parsed,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(body); err != nil {
		return nil, errors.WithSecondaryError(
			scoring.ErrProviderResponseMalformed,
			errors.Wrap(err, "map score response"),
		)
	}

	result := &scoring.Result{
		Score:           scoring.Clamp(parsed.Score),
		Suggestions:     emptyIfNil(parsed.Suggestions),
		Keywords:        emptyIfNil(parsed.Keywords),
		MissingKeywords: emptyIfNil(parsed.MissingKeywords),
	}
	if len(result.MissingKeywords) > scoring.MaxMissingKeywords {
		result.MissingKeywords = result.MissingKeywords[:scoring.MaxMissingKeywords]
	}
	if parsed.Breakdown != nil {
		result.Breakdown = &scoring.Breakdown{
			KeywordMatch:   scoring.Clamp(parsed.Breakdown.KeywordMatch),
			Formatting:     scoring.Clamp(parsed.Breakdown.Formatting),
			Structure:      scoring.Clamp(parsed.Breakdown.Structure),
			ContentQuality: scoring.Clamp(parsed.Breakdown.ContentQuality),
		}
	}

	s.logger.Debug("resume api scoring completed",
		zap.Int("score", result.Score),
		zap.Int("keywords", len(result.Keywords)),
	)

	return result, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
