package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrServe            = errors.New("api serve failed")
	ErrBadRequest       = errors.New("bad request")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrUpstream         = errors.New("event provider failed")
	ErrMissingMatchID   = errors.New("missing match_id")
	ErrMissingPlayerID  = errors.New("missing player_id")
	ErrInvalidMatchID   = errors.New("match_id must be a positive integer")
	ErrInvalidPlayerID  = errors.New("player_id must be a positive integer")
	ErrMissingArguments = errors.New("request body must be a JSON object")
)

// Error records the handler operation that failed, the kind of failure
// and, optionally, the underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind != nil && e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	case e.Kind != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Wrap annotates err with op. It returns nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// WrapKind annotates err with op and classifies it as kind.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// NewKind returns an error of the given kind with no further cause.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}
