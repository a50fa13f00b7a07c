package gemini

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

type stubGenerator struct {
	summary string
	err     error
	prompt  string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func TestScorerBonuses(t *testing.T) {
	longSummary := strings.Repeat("a solid engineering profile ", 3)

	tests := []struct {
		name     string
		summary  string
		text     string
		expected int
	}{
		{
			name:     "trivial summary plain text",
			summary:  "short",
			text:     "a resume with no notable terms",
			expected: 70,
		},
		{
			name:     "long summary only",
			summary:  longSummary,
			text:     "a resume with no notable terms",
			expected: 80,
		},
		{
			name:     "technical keyword only",
			summary:  "short",
			text:     "worked with python daily",
			expected: 80,
		},
		{
			name:     "action verb only",
			summary:  "short",
			text:     "delivered the project on time",
			expected: 80,
		},
		{
			name:     "all bonuses",
			summary:  longSummary,
			text:     "developed python services on kubernetes",
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := &stubGenerator{summary: tt.summary}
			scorer := NewScorer(generator, scoring.Default(), zap.NewNop(), 0)

			result, err := scorer.Score(context.Background(), scoring.Request{Text: tt.text})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tt.expected {
				t.Fatalf("expected score %d, got %d", tt.expected, result.Score)
			}
			if result.Score < 70 || result.Score > 100 {
				t.Fatalf("score %d outside synthetic range", result.Score)
			}
			if !strings.Contains(generator.prompt, tt.text) {
				t.Fatalf("prompt must embed the resume text")
			}
		})
	}
}

func TestScorerKeywordsFromTechnicalSubset(t *testing.T) {
	generator := &stubGenerator{summary: "short"}
	scorer := NewScorer(generator, scoring.Default(), zap.NewNop(), 0)

	result, err := scorer.Score(context.Background(), scoring.Request{Text: "python and docker and react"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]bool{"python": true, "docker": true, "react": true}
	if len(result.Keywords) != len(expected) {
		t.Fatalf("expected %d keywords, got %v", len(expected), result.Keywords)
	}
	for _, keyword := range result.Keywords {
		if !expected[keyword] {
			t.Fatalf("unexpected keyword %q", keyword)
		}
	}
}

func TestScorerGenerationFailure(t *testing.T) {
	generator := &stubGenerator{err: errors.New("quota exceeded")}
	scorer := NewScorer(generator, scoring.Default(), zap.NewNop(), 0)

	_, err := scorer.Score(context.Background(), scoring.Request{Text: "anything"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !errors.Is(err, scoring.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable classification, got %v", err)
	}
}
