package llm

import "errors"

var (
	// ErrMissingAPIKey is returned by New when no API key is supplied.
	ErrMissingAPIKey = errors.New("llm: api key is required")
	// ErrNoChoices is returned when the backend answers without a completion.
	ErrNoChoices = errors.New("llm: response has no choices")
)
