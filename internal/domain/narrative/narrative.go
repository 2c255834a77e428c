// Package narrative turns a match's key events into prompts for a text
// generation backend and classifies the outcome of each generation.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/matchlens/internal/domain/model"
)

// Default sampling parameters.
const (
	DefaultSummaryMaxTokens   = 150
	DefaultNarrativeMaxTokens = 200
	DefaultTemperature        = 0.7
	singleCompletion          = 1
)

// Operation names used in logs and metrics.
const (
	OpSummary   = "summary"
	OpNarrative = "narrative"
)

// Request is one call to the text generation backend.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
	N           int
	Stop        []string // nil means no stop sequence
}

// Completer is the text generation backend: prompt in, text out.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Outcome classifies a generation attempt.
type Outcome int

const (
	// Generated means the backend returned text.
	Generated Outcome = iota
	// NoKeyEvents means there was nothing to narrate; the backend was not called.
	NoKeyEvents
	// Unavailable means the backend (or the data feeding it) failed.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Generated:
		return "generated"
	case NoKeyEvents:
		return "no_key_events"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of a summary or narrative request. Text is always
// set: the generated prose, or the localized fixed message for the
// outcome. A completion that is empty once trimmed counts as Unavailable
// (with ErrEmptyCompletion), so Generated text is never empty. Err carries
// the cause when Outcome is Unavailable.
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

// Settings are the sampling parameters per operation.
type Settings struct {
	SummaryMaxTokens   int
	NarrativeMaxTokens int
	Temperature        float64
}

// DefaultSettings returns the stock sampling parameters.
func DefaultSettings() Settings {
	return Settings{
		SummaryMaxTokens:   DefaultSummaryMaxTokens,
		NarrativeMaxTokens: DefaultNarrativeMaxTokens,
		Temperature:        DefaultTemperature,
	}
}

// Generator renders prompts from key events and calls the Completer.
// It holds no mutable state and is safe for concurrent use when the
// Completer is.
type Generator struct {
	completer Completer
	messages  Messages
	settings  Settings
}

// NewGenerator creates a Generator speaking the catalog language msgs.
func NewGenerator(c Completer, msgs Messages, s Settings) *Generator {
	return &Generator{completer: c, messages: msgs, settings: s}
}

// Messages returns the catalog the generator renders with.
func (g *Generator) Messages() Messages { return g.messages }

// Summary generates a short summary of keyEvents.
func (g *Generator) Summary(ctx context.Context, keyEvents []model.Event) Result {
	if len(keyEvents) == 0 {
		return Result{Text: g.messages.NoSummaryEvents, Outcome: NoKeyEvents}
	}
	return g.complete(ctx, g.messages.SummaryPrompt(keyEvents), g.settings.SummaryMaxTokens, g.messages.SummaryUnavailable)
}

// Narrative generates a narrative of keyEvents in the given style.
func (g *Generator) Narrative(ctx context.Context, keyEvents []model.Event, style string) Result {
	if len(keyEvents) == 0 {
		return Result{Text: g.messages.NoNarrativeEvents, Outcome: NoKeyEvents}
	}
	return g.complete(ctx, g.messages.NarrativePrompt(keyEvents, style), g.settings.NarrativeMaxTokens, g.messages.NarrativeUnavailable)
}

// SummaryUnavailable is the result reported when the summary could not be
// produced for reasons outside the generator, such as a failed fetch.
func (g *Generator) SummaryUnavailable(err error) Result {
	return Result{Text: g.messages.SummaryUnavailable, Outcome: Unavailable, Err: fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)}
}

// NarrativeUnavailable is the narrative counterpart of SummaryUnavailable.
func (g *Generator) NarrativeUnavailable(err error) Result {
	return Result{Text: g.messages.NarrativeUnavailable, Outcome: Unavailable, Err: fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)}
}

func (g *Generator) complete(ctx context.Context, prompt string, maxTokens int, fallback string) Result {
	if g.completer == nil {
		return Result{Text: fallback, Outcome: Unavailable, Err: fmt.Errorf("%w: %w", ErrGenerationUnavailable, ErrNotConfigured)}
	}
	text, err := g.completer.Complete(ctx, Request{
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: g.settings.Temperature,
		N:           singleCompletion,
	})
	if err != nil {
		return Result{Text: fallback, Outcome: Unavailable, Err: fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Text: fallback, Outcome: Unavailable, Err: fmt.Errorf("%w: %w", ErrGenerationUnavailable, ErrEmptyCompletion)}
	}
	return Result{Text: text, Outcome: Generated}
}
