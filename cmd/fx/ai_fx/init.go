package ai_fx

import (
	"go.uber.org/fx"

	"tourmuse/internal/config"
	"tourmuse/pkg/ai"
	"tourmuse/pkg/logger"
)

var Module = fx.Provide(provideAIClient)

// A nil client means no provider is configured; services keep to their local
// behavior.
func provideAIClient(cfg *config.Config) ai.Client {
	client, err := ai.New(cfg)
	if err != nil {
		logger.Log.WithError(err).Warn("AI provider misconfigured, running with local fallbacks only")
		return nil
	}
	return client
}
