package resumeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/DULAJBHAGYA/AI-IT-Path-Finder/internal/scoring"
)

func TestScoreResume(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/score" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload["text"] != "resume body" {
			t.Errorf("unexpected text %q", payload["text"])
		}
		if payload["job_description"] != "backend role" {
			t.Errorf("unexpected job description %q", payload["job_description"])
		}

		json.NewEncoder(w).Encode(map[string]any{"score": 91})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", zap.NewNop())

	body, err := client.ScoreResume(context.Background(), "resume body", "backend role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["score"] != float64(91) {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestScoreResumeBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", zap.NewNop())

	_, err := client.ScoreResume(context.Background(), "resume body", "")
	if !errors.Is(err, scoring.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
}

func TestScoreResumeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", zap.NewNop())

	_, err := client.ScoreResume(context.Background(), "resume body", "")
	if !errors.Is(err, scoring.ErrProviderResponseMalformed) {
		t.Fatalf("expected malformed response classification, got %v", err)
	}
}
