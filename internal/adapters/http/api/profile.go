package api

import (
	"context"
	"net/http"

	"github.com/okian/matchlens/internal/domain/model"
)

// ProfileDependencies defines the interface for profile lookups.
type ProfileDependencies interface {
	GetPlayerProfile(ctx context.Context, matchID, playerID int) (model.PlayerProfile, bool, error)
}

// ProfileHandler handles player profile requests.
type ProfileHandler struct {
	deps ProfileDependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps ProfileDependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleProfile handles POST /player_profile requests.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	const op = "api.player_profile"
	req, err := decodeRequest(w, r)
	if err == nil {
		err = req.validatePlayer()
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	p, ok, err := h.deps.GetPlayerProfile(r.Context(), *req.MatchID, *req.PlayerID)
	if err != nil {
		writeProviderError(w, r, op, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "player_not_found", NewKind(op, ErrPlayerNotFound))
		return
	}
	writeJSON(w, http.StatusOK, p)
}
