package gemini

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp    *genai.GenerateContentResponse
	err     error
	model   string
	content []*genai.Content
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.content = contents
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: parts},
		}},
	}
}

func TestGenerateContent(t *testing.T) {
	models := &fakeModels{resp: textResponse("first part", "second part")}
	g := &Generator{models: models, modelName: "gemini-pro"}

	output, err := g.GenerateContent(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "first part\nsecond part" {
		t.Fatalf("unexpected output %q", output)
	}
	if models.model != "gemini-pro" {
		t.Fatalf("expected configured model to be used, got %q", models.model)
	}
	if len(models.content) == 0 {
		t.Fatalf("expected prompt content to be sent")
	}
}

func TestGenerateContentSkipsEmptyParts(t *testing.T) {
	models := &fakeModels{resp: textResponse("  ", "useful", "")}
	g := &Generator{models: models, modelName: "gemini-pro"}

	output, err := g.GenerateContent(context.Background(), "summarize this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "useful" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestGenerateContentErrors(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		models *fakeModels
	}{
		{
			name:   "empty prompt",
			prompt: "   ",
			models: &fakeModels{resp: textResponse("unused")},
		},
		{
			name:   "upstream error",
			prompt: "summarize",
			models: &fakeModels{err: errors.New("rate limited")},
		},
		{
			name:   "empty response",
			prompt: "summarize",
			models: &fakeModels{resp: &genai.GenerateContentResponse{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Generator{models: tt.models, modelName: "gemini-pro"}
			if _, err := g.GenerateContent(context.Background(), tt.prompt); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}
