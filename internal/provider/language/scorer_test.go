package language

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

type stubAnalyzer struct {
	entities []Entity
	err      error
}

func (s *stubAnalyzer) AnalyzeEntities(_ context.Context, _ string) ([]Entity, error) {
	return s.entities, s.err
}

func manyEntities(n int, salience float64) []Entity {
	entities := make([]Entity, n)
	for i := range entities {
		entities[i] = Entity{Name: "entity", Type: "PERSON", Salience: salience}
	}
	return entities
}

func TestScorerEntityRules(t *testing.T) {
	tests := []struct {
		name     string
		entities []Entity
		expected int
	}{
		{
			name:     "no entities",
			entities: nil,
			expected: 70,
		},
		{
			name:     "below salience threshold",
			entities: manyEntities(5, 0.001),
			expected: 70,
		},
		{
			name:     "five salient entities",
			entities: manyEntities(5, 0.2),
			expected: 75,
		},
		{
			name:     "entity points capped at twenty",
			entities: manyEntities(50, 0.2),
			expected: 90,
		},
		{
			name: "organization bonus",
			entities: []Entity{
				{Name: "Acme Corp", Type: "ORGANIZATION", Salience: 0.4},
			},
			expected: 81,
		},
		{
			name: "other type counts as organization",
			entities: []Entity{
				{Name: "something", Type: "OTHER", Salience: 0.4},
			},
			expected: 81,
		},
		{
			name:     "capped at one hundred",
			entities: append(manyEntities(50, 0.2), Entity{Name: "Acme", Type: "ORGANIZATION", Salience: 0.4}),
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(&stubAnalyzer{entities: tt.entities}, zap.NewNop())

			result, err := scorer.Score(context.Background(), scoring.Request{Text: "resume text"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tt.expected {
				t.Fatalf("expected score %d, got %d", tt.expected, result.Score)
			}
		})
	}
}

func TestScorerSalientNamesBecomeKeywords(t *testing.T) {
	scorer := NewScorer(&stubAnalyzer{entities: []Entity{
		{Name: "Kubernetes", Type: "OTHER", Salience: 0.5},
		{Name: "noise", Type: "PERSON", Salience: 0.001},
	}}, zap.NewNop())

	result, err := scorer.Score(context.Background(), scoring.Request{Text: "resume text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Keywords) != 1 || result.Keywords[0] != "Kubernetes" {
		t.Fatalf("expected only salient names as keywords, got %v", result.Keywords)
	}
}

func TestScorerPropagatesAnalyzerError(t *testing.T) {
	analyzerErr := errors.Wrap(scoring.ErrProviderUnavailable, "dial failed")
	scorer := NewScorer(&stubAnalyzer{err: analyzerErr}, zap.NewNop())

	_, err := scorer.Score(context.Background(), scoring.Request{Text: "resume text"})
	if !errors.Is(err, scoring.ErrProviderUnavailable) {
		t.Fatalf("expected analyzer error to pass through, got %v", err)
	}
}
