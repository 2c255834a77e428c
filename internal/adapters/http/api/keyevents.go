package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okian/matchlens/internal/domain/model"
)

// KeyEventsDependencies defines the interface for key event reads.
type KeyEventsDependencies interface {
	GetKeyEvents(ctx context.Context, matchID int) ([]model.Event, error)
}

// KeyEventsHandler handles key event requests.
type KeyEventsHandler struct {
	deps KeyEventsDependencies
}

// NewKeyEventsHandler creates a new key events handler.
func NewKeyEventsHandler(deps KeyEventsDependencies) *KeyEventsHandler {
	return &KeyEventsHandler{deps: deps}
}

// HandleKeyEvents handles GET /matches/{match_id}/key_events requests.
func (h *KeyEventsHandler) HandleKeyEvents(w http.ResponseWriter, r *http.Request) {
	const op = "api.key_events"
	matchID, err := strconv.Atoi(mux.Vars(r)["match_id"])
	if err != nil || matchID <= 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrInvalidMatchID))
		return
	}
	events, err := h.deps.GetKeyEvents(r.Context(), matchID)
	if err != nil {
		writeProviderError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, keyEventsResponse{MatchID: matchID, KeyEvents: events})
}
