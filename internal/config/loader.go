package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names read outside the MATCHLENS_ prefix.
const (
	envConfigFile   = "MATCHLENS_CONFIG"
	envPrefix       = "MATCHLENS_"
	envOpenAIAPIKey = "OPENAI_API_KEY"
)

// listKeys are the keys whose env values are comma separated lists.
var listKeys = map[string]struct{}{"cors_origins": {}}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MATCHLENS_CONFIG is set
//  3. env (prefix MATCHLENS_)
//
// OPENAI_API_KEY is consulted last, only when no key was configured.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Map env keys like MATCHLENS_DATA_DIR -> data_dir (flat keys).
	// List values are comma separated.
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if _, ok := listKeys[key]; ok {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = os.Getenv(envOpenAIAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return invalid("addr must not be empty")
	case c.ServiceName == "":
		return invalid("service_name must not be empty")
	case c.Provider != ProviderFile && c.Provider != ProviderHTTP:
		return invalid("provider must be %q or %q, got %q", ProviderFile, ProviderHTTP, c.Provider)
	case c.Provider == ProviderFile && c.DataDir == "":
		return invalid("data_dir must not be empty for the file provider")
	case c.SummaryMaxTokens <= 0 || c.NarrativeMaxTokens <= 0:
		return invalid("max tokens must be positive")
	case c.Temperature < 0 || c.Temperature > 2:
		return invalid("temperature must be within [0, 2], got %v", c.Temperature)
	case c.GenerationMaxRetries < 0:
		return invalid("generation_max_retries must not be negative")
	}
	return nil
}
