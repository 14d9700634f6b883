package insights

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/logidash/internal/config"
	"github.com/polkiloo/logidash/internal/usecase"
)

// Module exposes the text generator implementation to fx graph.
var Module = fx.Provide(newGenerator)

type generatorParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newGenerator(p generatorParams) (usecase.TextGenerator, error) {
	if p.Config.GeminiAPIKey == "" {
		p.Logger.Warn("GEMINI_API_KEY is not set, insights are disabled")
		return Disabled{}, nil
	}
	return NewGeminiClient(p.Ctx, Options{
		APIKey:  p.Config.GeminiAPIKey,
		Model:   p.Config.GeminiModel,
		BaseURL: p.Config.GeminiBaseURL,
		Timeout: p.Config.InsightsTimeout,
	}, p.Logger)
}
