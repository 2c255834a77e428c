// Package service provides the core match analysis service that implements
// the dependencies required by the HTTP API and the MCP tool server.
package service

import (
	"context"
	"time"

	"github.com/okian/matchlens/internal/adapters/provider"
	"github.com/okian/matchlens/internal/domain/keyevents"
	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/domain/narrative"
	"github.com/okian/matchlens/internal/domain/profile"
	"github.com/okian/matchlens/pkg/logger"
	"github.com/okian/matchlens/pkg/metrics"
)

// Profile lookup results used as metric labels.
const (
	lookupFound    = "found"
	lookupNotFound = "not_found"
	lookupError    = "error"
)

// Service answers questions about a single match. Every call fetches the
// match afresh; nothing is cached between calls.
type Service struct {
	provider  provider.Provider
	completer narrative.Completer
	language  string
	settings  narrative.Settings
	generator *narrative.Generator
	logger    logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCompleter sets the text generation backend. Without one, summaries
// and narratives report Unavailable.
func WithCompleter(c narrative.Completer) Option {
	return func(s *Service) { s.completer = c }
}

// WithLanguage selects the message catalog, e.g. "en" or "pt-BR".
func WithLanguage(lang string) Option {
	return func(s *Service) { s.language = lang }
}

// WithSettings sets the sampling parameters. Non-positive token budgets
// keep their defaults.
func WithSettings(st narrative.Settings) Option {
	return func(s *Service) {
		if st.SummaryMaxTokens > 0 {
			s.settings.SummaryMaxTokens = st.SummaryMaxTokens
		}
		if st.NarrativeMaxTokens > 0 {
			s.settings.NarrativeMaxTokens = st.NarrativeMaxTokens
		}
		s.settings.Temperature = st.Temperature
	}
}

// New constructs a Service reading events from p.
func New(p provider.Provider, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, ErrNoProvider
	}
	s := &Service{
		provider: p,
		settings: narrative.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.generator = narrative.NewGenerator(s.completer, narrative.MessagesFor(s.language), s.settings)
	return s, nil
}

// GenerationEnabled reports whether a text generation backend is wired.
func (s *Service) GenerationEnabled() bool {
	return s.completer != nil
}

// Language returns the BCP 47 tag of the active message catalog.
func (s *Service) Language() string {
	return s.generator.Messages().Tag.String()
}

// GetKeyEvents returns the key events of the match in provider order.
func (s *Service) GetKeyEvents(ctx context.Context, matchID int) ([]model.Event, error) {
	events, err := s.provider.FetchEvents(ctx, matchID)
	if err != nil {
		return nil, err
	}
	keys := keyevents.Filter(events)
	metrics.RecordKeyEventsSelected(len(keys))
	s.logger.Debug(ctx, "key events selected",
		logger.Int("matchID", matchID),
		logger.Int("events", len(events)),
		logger.Int("keyEvents", len(keys)),
	)
	return keys, nil
}

// GetPlayerProfile aggregates the player's statistics for the match. The
// boolean is false when the player has no events in the match.
func (s *Service) GetPlayerProfile(ctx context.Context, matchID, playerID int) (model.PlayerProfile, bool, error) {
	events, err := s.provider.FetchEvents(ctx, matchID)
	if err != nil {
		metrics.RecordProfileLookup(lookupError)
		return model.PlayerProfile{}, false, err
	}
	p, ok := profile.Build(events, playerID)
	if !ok {
		metrics.RecordProfileLookup(lookupNotFound)
		return model.PlayerProfile{}, false, nil
	}
	metrics.RecordProfileLookup(lookupFound)
	return p, true, nil
}

// Summary generates a short summary of the match's key events.
func (s *Service) Summary(ctx context.Context, matchID int) narrative.Result {
	start := time.Now()
	keys, err := s.GetKeyEvents(ctx, matchID)
	var res narrative.Result
	if err != nil {
		res = s.generator.SummaryUnavailable(err)
	} else {
		res = s.generator.Summary(ctx, keys)
	}
	s.observe(ctx, narrative.OpSummary, matchID, res, time.Since(start))
	return res
}

// Narrative generates a narrative of the match's key events in style.
// The style is embedded as given; pass narrative.DefaultStyle when the
// caller did not ask for one.
func (s *Service) Narrative(ctx context.Context, matchID int, style string) narrative.Result {
	start := time.Now()
	keys, err := s.GetKeyEvents(ctx, matchID)
	var res narrative.Result
	if err != nil {
		res = s.generator.NarrativeUnavailable(err)
	} else {
		res = s.generator.Narrative(ctx, keys, style)
	}
	s.observe(ctx, narrative.OpNarrative, matchID, res, time.Since(start))
	return res
}

// SummarizeMatch returns the summary text. It never fails: problems are
// reported through the localized fallback message.
func (s *Service) SummarizeMatch(ctx context.Context, matchID int) string {
	return s.Summary(ctx, matchID).Text
}

// GenerateNarrative returns the narrative text. Like SummarizeMatch it
// never fails.
func (s *Service) GenerateNarrative(ctx context.Context, matchID int, style string) string {
	return s.Narrative(ctx, matchID, style).Text
}

// observe is the single place a generation outcome is logged and counted.
func (s *Service) observe(ctx context.Context, op string, matchID int, res narrative.Result, elapsed time.Duration) {
	metrics.RecordGeneration(op, res.Outcome.String())
	if res.Outcome == narrative.Generated {
		metrics.RecordGenerationLatency(op, float64(elapsed.Microseconds())/1000)
	}

	fields := []logger.Field{
		logger.String("operation", op),
		logger.Int("matchID", matchID),
		logger.String("outcome", res.Outcome.String()),
		logger.Duration("elapsed", elapsed),
	}
	if res.Err != nil {
		metrics.RecordErrorByComponent("service", op)
		s.logger.Error(ctx, "generation unavailable", append(fields, logger.Error(res.Err))...)
		return
	}
	s.logger.Info(ctx, "generation finished", fields...)
}
