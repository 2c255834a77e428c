package service

import "errors"

// ErrNoProvider is returned by New when no event provider is configured.
var ErrNoProvider = errors.New("service: event provider is required")
