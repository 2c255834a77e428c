package narrative

import "errors"

// Sentinel kinds for generation errors.
var (
	ErrGenerationUnavailable = errors.New("generation unavailable")
	ErrNotConfigured         = errors.New("generation not configured")
	ErrEmptyCompletion       = errors.New("empty completion")
)
