package services

import (
	"context"
	"fmt"

	"alfredoptarigan/career-mentor/internal/config"
)

const adkAppName = "career_mentor"

// NewGatewayFromConfig builds the configured LLM gateway. Without an API key
// it returns a nil gateway and the generator serves the fallback roadmap.
func NewGatewayFromConfig(ctx context.Context, cfg config.LLMConfig) (LLMGateway, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiGateway(ctx, cfg.APIKey, GeminiOptions{
			Model:           cfg.Model,
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
	case config.ProviderADK:
		return NewADKGateway(ctx, cfg.APIKey, cfg.Model, adkAppName)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
