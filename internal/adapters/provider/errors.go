package provider

import (
	"context"
	"errors"
)

// Sentinel kinds for provider errors.
var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrInvalidPayload = errors.New("invalid events payload")
	ErrUnavailable    = errors.New("event provider unavailable")
)

// fetchStatus classifies err for metrics labels.
func fetchStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMatchNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unavailable"
	}
}
