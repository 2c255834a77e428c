// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/matchlens/internal/adapters/provider"
	"github.com/okian/matchlens/internal/domain/model"
	"github.com/okian/matchlens/internal/domain/narrative"
	"github.com/okian/matchlens/pkg/logger"
)

// maxBodyBytes caps request bodies; every request is a small JSON object.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	GetKeyEvents(ctx context.Context, matchID int) ([]model.Event, error)
	GetPlayerProfile(ctx context.Context, matchID, playerID int) (model.PlayerProfile, bool, error)
	Summary(ctx context.Context, matchID int) narrative.Result
	Narrative(ctx context.Context, matchID int, style string) narrative.Result
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	matchHandler     *MatchHandler
	profileHandler   *ProfileHandler
	keyEventsHandler *KeyEventsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, status StatusProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(status),
		matchHandler:     NewMatchHandler(deps),
		profileHandler:   NewProfileHandler(deps),
		keyEventsHandler: NewKeyEventsHandler(deps),
	}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(ctx context.Context, r *mux.Router) {
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")).Methods(http.MethodGet)
	r.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/match_summary", MetricsMiddleware(s.matchHandler.HandleSummary, "match_summary")).Methods(http.MethodPost)
	r.HandleFunc("/narrate_match", MetricsMiddleware(s.matchHandler.HandleNarrative, "narrate_match")).Methods(http.MethodPost)
	r.HandleFunc("/player_profile", MetricsMiddleware(s.profileHandler.HandleProfile, "player_profile")).Methods(http.MethodPost)
	r.HandleFunc("/matches/{match_id}/key_events", MetricsMiddleware(s.keyEventsHandler.HandleKeyEvents, "key_events")).Methods(http.MethodGet)

	logger.Get().Debug(ctx, "api routes registered")
}

// matchRequest mirrors the OpenAPI schema shared by the match endpoints.
type matchRequest struct {
	MatchID  *int    `json:"match_id"`
	PlayerID *int    `json:"player_id,omitempty"`
	Style    *string `json:"style,omitempty"`
}

func (m matchRequest) validateMatch() error {
	switch {
	case m.MatchID == nil:
		return ErrMissingMatchID
	case *m.MatchID <= 0:
		return ErrInvalidMatchID
	}
	return nil
}

func (m matchRequest) validatePlayer() error {
	if err := m.validateMatch(); err != nil {
		return err
	}
	switch {
	case m.PlayerID == nil:
		return ErrMissingPlayerID
	case *m.PlayerID <= 0:
		return ErrInvalidPlayerID
	}
	return nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (matchRequest, error) {
	var req matchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, ErrMissingArguments
		}
		return req, fmt.Errorf("decode body: %w", err)
	}
	return req, nil
}

type summaryResponse struct {
	Summary string            `json:"summary"`
	Outcome narrative.Outcome `json:"outcome"`
}

type narrativeResponse struct {
	Narrative string            `json:"narrative"`
	Outcome   narrative.Outcome `json:"outcome"`
}

type keyEventsResponse struct {
	MatchID   int           `json:"match_id"`
	KeyEvents []model.Event `json:"key_events"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg, RequestID: w.Header().Get(RequestIDHeader)})
}

// writeProviderError maps provider failures: unknown matches are 404,
// everything else is the upstream's fault.
func writeProviderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, provider.ErrMatchNotFound) {
		writeError(w, http.StatusNotFound, "match_not_found", Wrap(op, err))
		return
	}
	logger.Get().Error(r.Context(), "event provider failed",
		logger.String("op", op),
		logger.String("requestID", w.Header().Get(RequestIDHeader)),
		logger.Error(err),
	)
	writeError(w, http.StatusServiceUnavailable, "upstream_unavailable", WrapKind(op, ErrUpstream, err))
}
