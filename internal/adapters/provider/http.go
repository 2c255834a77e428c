package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/okian/matchlens/internal/domain/model"
)

// DefaultBaseURL serves the StatsBomb open-data event documents.
const DefaultBaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data/events"

const (
	defaultTimeout  = 30 * time.Second
	maxErrorBodyLen = 512
)

// HTTPOption applies a configuration option to the HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(p *HTTPProvider) {
		if d > 0 {
			p.client = &http.Client{Timeout: d}
		}
	}
}

// HTTPProvider fetches {baseURL}/{matchID}.json over HTTP.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider for baseURL (DefaultBaseURL if empty).
func NewHTTPProvider(baseURL string, opts ...HTTPOption) *HTTPProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	p := &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// URL returns the document URL for matchID.
func (p *HTTPProvider) URL(matchID int) string {
	return p.baseURL + "/" + strconv.Itoa(matchID) + ".json"
}

// FetchEvents implements Provider.
func (p *HTTPProvider) FetchEvents(ctx context.Context, matchID int) ([]model.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL(matchID), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch match %d: %w", ErrUnavailable, matchID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return nil, fmt.Errorf("%w: match %d: status %d: %s", ErrUnavailable, matchID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read match %d: %w", ErrUnavailable, matchID, err)
	}
	events, err := DecodeEvents(data)
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", matchID, err)
	}
	return events, nil
}
