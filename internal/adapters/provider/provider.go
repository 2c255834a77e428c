// Package provider fetches the event stream of a match from an upstream
// data source. Documents follow the StatsBomb open-data layout: one JSON
// array of events per match.
package provider

import (
	"context"
	"time"

	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/pkg/metrics"
)

// Provider is a read-only source of match events.
type Provider interface {
	// FetchEvents returns every event of the match in provider order.
	// Returns ErrMatchNotFound if the match is unknown.
	FetchEvents(ctx context.Context, matchID int) ([]model.Event, error)
}

// instrumented records fetch counts and latency for a named provider.
type instrumented struct {
	name  string
	inner Provider
}

// Instrument wraps p so that every fetch is recorded in metrics under name.
func Instrument(name string, p Provider) Provider {
	return &instrumented{name: name, inner: p}
}

func (i *instrumented) FetchEvents(ctx context.Context, matchID int) ([]model.Event, error) {
	start := time.Now()
	events, err := i.inner.FetchEvents(ctx, matchID)
	latencyMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordProviderFetch(i.name, fetchStatus(err), latencyMs)
	if err == nil {
		metrics.RecordEventsFetched(len(events))
	}
	return events, err
}
