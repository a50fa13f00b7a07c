package language

import (
	"context"

	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

type entityAnalyzer interface {
	AnalyzeEntities(ctx context.Context, text string) ([]Entity, error)
}

// Scorer derives signal from named-entity extraction: salient entities
// contribute up to 20 points over a base of 70, with a flat 10-point
// bonus when any organization-like entity is present.
type Scorer struct {
	analyzer entityAnalyzer
	logger   *zap.Logger
}

const (
	baseScore = 70

	// Entities below this salience carry no signal.
	minSalience = 0.01

	maxEntityPoints   = 20
	organizationBonus = 10
	typeOrganization  = "ORGANIZATION"
	typeOther         = "OTHER"
)

// NewScorer creates the entity-based provider.
func NewScorer(analyzer entityAnalyzer, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{analyzer: analyzer, logger: logger}
}

func (s *Scorer) Name() string { return "language" }

// Score analyzes entities and maps their count and types onto a score.
func (s *Scorer) Score(ctx context.Context, req scoring.Request) (*scoring.Result, error) {
	entities, err := s.analyzer.AnalyzeEntities(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	salient := 0
	organization := false
	names := make([]string, 0, len(entities))
	for _, entity := range entities {
		if entity.Salience > minSalience {
			salient++
			names = append(names, entity.Name)
		}
		if entity.Type == typeOrganization || entity.Type == typeOther {
			organization = true
		}
	}

	points := salient
	if points > maxEntityPoints {
		points = maxEntityPoints
	}

	score := baseScore + points
	if organization {
		score += organizationBonus
	}
	if score > 100 {
		score = 100
	}

	s.logger.Debug("entity scoring completed",
		zap.Int("entities", len(entities)),
		zap.Int("salient", salient),
		zap.Bool("organization", organization),
		zap.Int("score", score),
	)

	return &scoring.Result{
		Score:           score,
		Suggestions:     []string{},
		Keywords:        names,
		MissingKeywords: []string{},
	}, nil
}
