package service

import (
	"fmt"

	"github.com/okian/matchlens/internal/adapters/llm"
	"github.com/okian/matchlens/internal/adapters/provider"
	"github.com/okian/matchlens/internal/config"
	"github.com/okian/matchlens/internal/domain/narrative"
	"github.com/okian/matchlens/pkg/logger"
)

// NewProvider builds the instrumented event provider selected by cfg.
func NewProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.Provider {
	case config.ProviderFile:
		return provider.Instrument(config.ProviderFile, provider.NewFileProvider(cfg.DataDir)), nil
	case config.ProviderHTTP:
		p := provider.NewHTTPProvider(cfg.EventsBaseURL, provider.WithTimeout(cfg.ProviderTimeout()))
		return provider.Instrument(config.ProviderHTTP, p), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", config.ErrInvalidConfig, cfg.Provider)
	}
}

// NewCompleter builds the generation client, or returns nil when no API
// key is configured.
func NewCompleter(cfg *config.Config) (narrative.Completer, error) {
	if !cfg.GenerationEnabled() {
		return nil, nil
	}
	c, err := llm.New(cfg.OpenAIAPIKey,
		llm.WithBaseURL(cfg.OpenAIBaseURL),
		llm.WithModel(cfg.Model),
		llm.WithTimeout(cfg.GenerationTimeout()),
		llm.WithMaxRetries(cfg.GenerationMaxRetries),
	)
	if err != nil {
		return nil, fmt.Errorf("build completer: %w", err)
	}
	return c, nil
}

// FromConfig wires a Service from cfg.
func FromConfig(cfg *config.Config, l logger.Logger) (*Service, error) {
	p, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	c, err := NewCompleter(cfg)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithLogger(l),
		WithLanguage(cfg.Language),
		WithSettings(narrative.Settings{
			SummaryMaxTokens:   cfg.SummaryMaxTokens,
			NarrativeMaxTokens: cfg.NarrativeMaxTokens,
			Temperature:        cfg.Temperature,
		}),
	}
	if c != nil {
		opts = append(opts, WithCompleter(c))
	}
	return New(p, opts...)
}
