package llm

import "github.com/marvinridge/lostfound/internal/config"

// NewFromConfig creates the client from the application config. Only
// providers with configured API keys are activated; which one a handler uses
// is decided by the model fields in config, not by code path.
func NewFromConfig(cfg config.AIConfig) *Client {
	var providers []Provider

	if cfg.GroqAPIKey != "" {
		providers = append(providers, NewOpenAIProvider(OpenAIConfig{
			Name:         "groq",
			BaseURL:      "https://api.groq.com/openai/v1",
			APIKey:       cfg.GroqAPIKey,
			Models:       []string{cfg.SearchModel, cfg.VisionModel},
			DefaultModel: cfg.SearchModel,
		}))
	}

	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, NewOpenAIProvider(OpenAIConfig{
			Name:         "openai",
			BaseURL:      "https://api.openai.com/v1",
			APIKey:       cfg.OpenAIAPIKey,
			Models:       []string{cfg.ModerationModel},
			DefaultModel: cfg.ModerationModel,
		}))
	}

	return New(providers)
}
