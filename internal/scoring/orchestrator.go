package scoring

import (
	"context"

	"go.uber.org/zap"
)

// Orchestrator selects a provider, invokes it, and on any failure falls
// back to the local heuristic scorer. It holds no mutable state between
// calls, so concurrent invocations need no locking.
type Orchestrator struct {
	local     *LocalScorer
	providers map[Preference]Provider
	logger    *zap.Logger
}

// NewOrchestrator wires the local scorer and the available remote
// providers. Remote providers may be nil or absent; a preference that
// resolves to no provider is served by the local scorer directly.
func NewOrchestrator(local *LocalScorer, providers map[Preference]Provider, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := make(map[Preference]Provider, len(providers))
	for pref, p := range providers {
		if p != nil {
			registry[pref] = p
		}
	}
	return &Orchestrator{local: local, providers: registry, logger: logger}
}

// GetScore produces a result for the request, honoring the preference
// when possible. It never fails: any provider error is logged and the
// same input is re-scored locally. Exactly one fallback hop.
func (o *Orchestrator) GetScore(ctx context.Context, req Request, pref Preference) *Result {
	if pref == "" || pref == PreferenceLocal {
		return o.scoreLocally(ctx, req)
	}

	provider, ok := o.providers[pref]
	if !ok {
		o.logger.Warn("provider not configured, using local scorer",
			zap.String("provider", pref.String()),
		)
		return o.scoreLocally(ctx, req)
	}

	result, err := provider.Score(ctx, req)
	if err != nil {
		o.logger.Warn("provider failed, falling back to local scorer",
			zap.String("provider", provider.Name()),
			zap.Error(err),
		)
		// The caller may already have abandoned the remote call; the
		// local scorer must still complete.
		return o.scoreLocally(context.WithoutCancel(ctx), req)
	}
	if result == nil {
		o.logger.Warn("provider returned no result, using local scorer",
			zap.String("provider", provider.Name()),
		)
		return o.scoreLocally(ctx, req)
	}

	result = result.Clone()
	if len(result.Suggestions) == 0 {
		result.Suggestions = Suggest(result.Score)
	}
	result.Provider = provider.Name()

	o.logger.Info("score produced",
		zap.String("provider", provider.Name()),
		zap.Int("score", result.Score),
	)

	return result
}

func (o *Orchestrator) scoreLocally(ctx context.Context, req Request) *Result {
	result, _ := o.local.Score(ctx, req)
	result.Provider = o.local.Name()

	o.logger.Info("score produced",
		zap.String("provider", o.local.Name()),
		zap.Int("score", result.Score),
	)

	return result
}
