// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New() returns a Config populated with defaults.
//   - Load(ctx) layers an optional YAML file and environment over the defaults.
//   - The loaded Config is passed explicitly to the components that need it;
//     nothing outside this package reads the process environment.
package config

import (
	"time"
)

// Provider kinds.
const (
	ProviderFile = "file"
	ProviderHTTP = "http"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log output to JSON lines.
	LogJSON bool `koanf:"log_json"`

	// ServiceName is attached to every metric as the "service" label.
	ServiceName string `koanf:"service_name"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// CORSOrigins lists origins allowed to call the API from a browser.
	CORSOrigins []string `koanf:"cors_origins"`

	// Language selects the message catalog (BCP 47, e.g. "en", "pt-BR").
	Language string `koanf:"language"`

	// Provider selects the event source: "file" or "http".
	Provider string `koanf:"provider"`

	// DataDir holds {match_id}.json documents for the file provider.
	DataDir string `koanf:"data_dir"`

	// EventsBaseURL is the document root for the http provider.
	EventsBaseURL string `koanf:"events_base_url"`

	// ProviderTimeoutMS bounds each http provider request.
	ProviderTimeoutMS int `koanf:"provider_timeout_ms"`

	// OpenAIAPIKey authenticates generation calls. Falls back to
	// OPENAI_API_KEY when unset. Empty disables generation.
	OpenAIAPIKey string `koanf:"openai_api_key"`

	// OpenAIBaseURL overrides the generation endpoint (OpenAI-compatible).
	OpenAIBaseURL string `koanf:"openai_base_url"`

	// Model is the completion model name.
	Model string `koanf:"model"`

	// SummaryMaxTokens and NarrativeMaxTokens cap generated length.
	SummaryMaxTokens   int `koanf:"summary_max_tokens"`
	NarrativeMaxTokens int `koanf:"narrative_max_tokens"`

	// Temperature is the sampling temperature for both operations.
	Temperature float64 `koanf:"temperature"`

	// GenerationTimeoutMS bounds each generation request.
	GenerationTimeoutMS int `koanf:"generation_timeout_ms"`

	// GenerationMaxRetries is handed to the generation client.
	GenerationMaxRetries int `koanf:"generation_max_retries"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		ServiceName:          "matchlens",
		Addr:                 ":8000",
		CORSOrigins:          []string{"*"},
		Language:             "en",
		Provider:             ProviderFile,
		DataDir:              "data/events",
		EventsBaseURL:        "https://raw.githubusercontent.com/statsbomb/open-data/master/data/events",
		ProviderTimeoutMS:    30_000,
		Model:                "gpt-3.5-turbo-instruct",
		SummaryMaxTokens:     150,
		NarrativeMaxTokens:   200,
		Temperature:          0.7,
		GenerationTimeoutMS:  60_000,
		GenerationMaxRetries: 2,
	}
}

// ProviderTimeout returns ProviderTimeoutMS as a duration.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutMS) * time.Millisecond
}

// GenerationTimeout returns GenerationTimeoutMS as a duration.
func (c *Config) GenerationTimeout() time.Duration {
	return time.Duration(c.GenerationTimeoutMS) * time.Millisecond
}

// GenerationEnabled reports whether an API key is configured.
func (c *Config) GenerationEnabled() bool {
	return c.OpenAIAPIKey != ""
}
