// Package llm adapts the OpenAI completions API to narrative.Completer.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/okian/matchlens/internal/domain/narrative"
)

// DefaultModel is an instruct model served by the legacy completions endpoint.
const DefaultModel = "gpt-3.5-turbo-instruct"

// Client calls the completions endpoint. It is safe for concurrent use.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

var _ narrative.Completer = (*Client)(nil)

// New creates a Client authenticated with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(s.maxRetries),
	}
	if s.baseURL != "" {
		// Endpoint paths are resolved relative to the base URL.
		reqOpts = append(reqOpts, option.WithBaseURL(strings.TrimRight(s.baseURL, "/")+"/"))
	}
	if s.timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(s.timeout))
	}
	if s.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(s.httpClient))
	}

	return &Client{api: openai.NewClient(reqOpts...), model: s.model, timeout: s.timeout}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Complete implements narrative.Completer and returns the first choice.
func (c *Client) Complete(ctx context.Context, req narrative.Request) (string, error) {
	params := openai.CompletionNewParams{
		Model:       openai.CompletionNewParamsModel(c.model),
		Prompt:      openai.CompletionNewParamsPromptUnion{OfString: openai.String(req.Prompt)},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.N > 0 {
		params.N = openai.Int(int64(req.N))
	}
	if len(req.Stop) > 0 {
		params.Stop = openai.CompletionNewParamsStopUnion{OfStringArray: req.Stop}
	}

	if c.timeout > 0 {
		// The per-attempt request timeout does not cover retries.
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm: create completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Text, nil
}

type completionResult struct {
	resp *openai.Completion
	err  error
}

// create returns when ctx is done even if the SDK is sleeping between
// retries; the call itself then fails on its next attempt.
func (c *Client) create(ctx context.Context, params openai.CompletionNewParams) (*openai.Completion, error) {
	done := make(chan completionResult, 1)
	go func() {
		resp, err := c.api.Completions.New(ctx, params)
		done <- completionResult{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
