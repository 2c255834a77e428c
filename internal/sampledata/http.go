package sampledata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/okian/matchlens/internal/domain/model"
)

// Client talks to a running matchlens server.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

// KeyEvents calls GET /matches/{id}/key_events.
func (c *Client) KeyEvents(ctx context.Context, matchID int) ([]model.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/matches/"+strconv.Itoa(matchID)+"/key_events", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	var out struct {
		KeyEvents []model.Event `json:"key_events"`
	}
	if _, err := c.do(req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.KeyEvents, nil
}

// Profile calls POST /player_profile. The boolean is false on 404.
func (c *Client) Profile(ctx context.Context, matchID, playerID int) (model.PlayerProfile, bool, error) {
	body, err := json.Marshal(map[string]int{"match_id": matchID, "player_id": playerID})
	if err != nil {
		return model.PlayerProfile{}, false, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/player_profile", bytes.NewReader(body))
	if err != nil {
		return model.PlayerProfile{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var p model.PlayerProfile
	status, err := c.do(req, &p, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return model.PlayerProfile{}, false, err
	}
	if status == http.StatusNotFound {
		return model.PlayerProfile{}, false, nil
	}
	return p, true, nil
}

// do sends req and decodes a 200 body into v. Other accepted statuses are
// returned without decoding.
func (c *Client) do(req *http.Request, v any, accepted ...int) (int, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}
	for _, s := range accepted {
		if resp.StatusCode != s {
			continue
		}
		if s == http.StatusOK {
			if err := json.Unmarshal(data, v); err != nil {
				return s, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return s, nil
	}
	return resp.StatusCode, fmt.Errorf("%w: %s %s: %d %s", ErrBadStatus, req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(data)))
}
