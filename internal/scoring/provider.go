package scoring

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the single capability every scoring strategy implements,
// remote or local. Remote implementations return one of the sentinel
// errors (wrapped) on failure; the local scorer never fails.
type Provider interface {
	Name() string
	Score(ctx context.Context, req Request) (*Result, error)
}

// Preference selects which provider the orchestrator tries first.
type Preference string

const (
	PreferenceLocal     Preference = "local"
	PreferenceResumeAPI Preference = "resume-api"
	PreferenceGemini    Preference = "gemini"
	PreferenceLanguage  Preference = "language"
)

// Preferences lists all selectable providers, local first.
func Preferences() []Preference {
	return []Preference{PreferenceLocal, PreferenceResumeAPI, PreferenceGemini, PreferenceLanguage}
}

// ParsePreference normalizes a configured provider name. An empty value
// defaults to local.
func ParsePreference(s string) (Preference, error) {
	switch Preference(strings.TrimSpace(strings.ToLower(s))) {
	case "", PreferenceLocal:
		return PreferenceLocal, nil
	case PreferenceResumeAPI:
		return PreferenceResumeAPI, nil
	case PreferenceGemini:
		return PreferenceGemini, nil
	case PreferenceLanguage:
		return PreferenceLanguage, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", s)
	}
}

func (p Preference) String() string { return string(p) }
