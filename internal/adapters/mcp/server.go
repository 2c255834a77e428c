// Package mcp exposes the match analysis operations as Model Context
// Protocol tools so agent clients can call them over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/domain/narrative"
	"github.com/okian/matchlens/pkg/logger"
)

// Tool names.
const (
	ToolKeyEvents     = "key_events"
	ToolPlayerProfile = "player_profile"
	ToolMatchSummary  = "match_summary"
	ToolNarrateMatch  = "narrate_match"
)

// Sentinel argument errors.
var (
	ErrInvalidMatchID  = errors.New("match_id must be a positive integer")
	ErrInvalidPlayerID = errors.New("player_id must be a positive integer")
	ErrPlayerNotFound  = errors.New("player not found in match")
)

// Dependencies are the service operations served as tools.
type Dependencies interface {
	GetKeyEvents(ctx context.Context, matchID int) ([]model.Event, error)
	GetPlayerProfile(ctx context.Context, matchID, playerID int) (model.PlayerProfile, bool, error)
	Summary(ctx context.Context, matchID int) narrative.Result
	Narrative(ctx context.Context, matchID int, style string) narrative.Result
}

// MatchArgs is the input schema for key_events and match_summary.
type MatchArgs struct {
	MatchID int `json:"match_id" jsonschema:"StatsBomb match id (required)"`
}

// ProfileArgs is the input schema for player_profile.
type ProfileArgs struct {
	MatchID  int `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	PlayerID int `json:"player_id" jsonschema:"StatsBomb player id (required)"`
}

// NarrateArgs is the input schema for narrate_match.
type NarrateArgs struct {
	MatchID int     `json:"match_id" jsonschema:"StatsBomb match id (required)"`
	Style   *string `json:"style,omitempty" jsonschema:"Narrative style, e.g. Formal, Humorous, Technical (default Formal)"`
}

// Tools adapts Dependencies to MCP tool handlers.
type Tools struct {
	deps   Dependencies
	logger logger.Logger
}

// NewTools creates the tool handlers.
func NewTools(deps Dependencies, l logger.Logger) *Tools {
	if l == nil {
		l = logger.Get()
	}
	return &Tools{deps: deps, logger: l.Named("mcp")}
}

// NewServer builds an MCP server with every tool registered.
func NewServer(deps Dependencies, l logger.Logger, version string) *sdk.Server {
	t := NewTools(deps, l)
	server := sdk.NewServer(&sdk.Implementation{Name: "matchlens", Version: version}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolKeyEvents,
		Description: "Goals, cards, substitutions and shots of a match, in match order",
	}, t.KeyEvents)
	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolPlayerProfile,
		Description: "Passes, finalizations, dispossessions and minutes played of a player in a match",
	}, t.PlayerProfile)
	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolMatchSummary,
		Description: "Short generated summary of a match's key events",
	}, t.MatchSummary)
	sdk.AddTool(server, &sdk.Tool{
		Name:        ToolNarrateMatch,
		Description: "Generated narrative of a match in the requested style",
	}, t.NarrateMatch)

	return server
}

// Run serves the tools over stdin/stdout until ctx is done or the client
// disconnects.
func Run(ctx context.Context, server *sdk.Server) error {
	if err := server.Run(ctx, &sdk.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp: serve stdio: %w", err)
	}
	return nil
}

// KeyEvents handles the key_events tool.
func (t *Tools) KeyEvents(ctx context.Context, _ *sdk.CallToolRequest, args MatchArgs) (*sdk.CallToolResult, any, error) {
	if args.MatchID <= 0 {
		return toolError(ErrInvalidMatchID), nil, nil
	}
	events, err := t.deps.GetKeyEvents(ctx, args.MatchID)
	if err != nil {
		t.logger.Warn(ctx, "key events failed", logger.Int("matchID", args.MatchID), logger.Error(err))
		return toolError(err), nil, nil
	}
	return toolJSON(map[string]any{"match_id": args.MatchID, "key_events": events})
}

// PlayerProfile handles the player_profile tool.
func (t *Tools) PlayerProfile(ctx context.Context, _ *sdk.CallToolRequest, args ProfileArgs) (*sdk.CallToolResult, any, error) {
	switch {
	case args.MatchID <= 0:
		return toolError(ErrInvalidMatchID), nil, nil
	case args.PlayerID <= 0:
		return toolError(ErrInvalidPlayerID), nil, nil
	}
	p, ok, err := t.deps.GetPlayerProfile(ctx, args.MatchID, args.PlayerID)
	if err != nil {
		t.logger.Warn(ctx, "player profile failed",
			logger.Int("matchID", args.MatchID),
			logger.Int("playerID", args.PlayerID),
			logger.Error(err),
		)
		return toolError(err), nil, nil
	}
	if !ok {
		return toolError(ErrPlayerNotFound), nil, nil
	}
	return toolJSON(p)
}

// MatchSummary handles the match_summary tool. The fallback message is
// returned as a tool error so agents can tell it from generated text.
func (t *Tools) MatchSummary(ctx context.Context, _ *sdk.CallToolRequest, args MatchArgs) (*sdk.CallToolResult, any, error) {
	if args.MatchID <= 0 {
		return toolError(ErrInvalidMatchID), nil, nil
	}
	return textResult(t.deps.Summary(ctx, args.MatchID)), nil, nil
}

// NarrateMatch handles the narrate_match tool.
func (t *Tools) NarrateMatch(ctx context.Context, _ *sdk.CallToolRequest, args NarrateArgs) (*sdk.CallToolResult, any, error) {
	if args.MatchID <= 0 {
		return toolError(ErrInvalidMatchID), nil, nil
	}
	return textResult(t.deps.Narrative(ctx, args.MatchID, narrative.StyleOrDefault(args.Style))), nil, nil
}

func textResult(res narrative.Result) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		IsError: res.Outcome == narrative.Unavailable,
		Content: []sdk.Content{&sdk.TextContent{Text: res.Text}},
	}
}

func toolJSON(v any) (*sdk.CallToolResult, any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return toolError(err), nil, nil
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(err error) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		IsError: true,
		Content: []sdk.Content{&sdk.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}
