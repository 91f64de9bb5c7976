package llm

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Provider string
	APIKey   string
	Model    string
	// BaseURL overrides the provider endpoint, e.g. an OpenAI-compatible API
	// or a local proxy.
	BaseURL string
}

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderGemini:    "gemini-2.0-flash",
	ProviderAnthropic: "claude-sonnet-4-20250514",
}

func DefaultModel(provider string) string {
	return defaultModels[strings.ToLower(provider)]
}

// New builds the gateway selected by cfg.Provider. It fails with
// ErrMissingCredential before touching any SDK when the key is empty.
func New(ctx context.Context, cfg Config) (Gateway, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if _, ok := defaultModels[provider]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingCredential
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[provider]
	}

	var (
		gw  Gateway
		err error
	)
	switch provider {
	case ProviderGemini:
		gw, err = NewGeminiGateway(ctx, cfg)
	case ProviderAnthropic:
		gw, err = NewAnthropicGateway(cfg)
	default:
		gw, err = NewOpenAIGateway(cfg)
	}
	if err != nil {
		return nil, err
	}
	return gw, nil
}

func pickModel(req Request, fallback string) string {
	if req.Model != "" {
		return req.Model
	}
	return fallback
}
