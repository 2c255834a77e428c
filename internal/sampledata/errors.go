package sampledata

import "errors"

// Sentinel errors.
var (
	ErrNoEvents   = errors.New("no events to save")
	ErrUnhealthy  = errors.New("service health check failed")
	ErrMismatch   = errors.New("service answer does not match the expected value")
	ErrBadStatus  = errors.New("unexpected HTTP status")
	ErrInvalidArg = errors.New("invalid argument")
)
