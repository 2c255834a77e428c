package api

import (
	"context"
	"net/http"

	"github.com/okian/matchlens/internal/domain/narrative"
)

// MatchDependencies defines the generation operations.
type MatchDependencies interface {
	Summary(ctx context.Context, matchID int) narrative.Result
	Narrative(ctx context.Context, matchID int, style string) narrative.Result
}

// MatchHandler handles summary and narrative requests. Both always answer
// 200 once the request is valid; the outcome field tells a generated text
// from a fallback message.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandleSummary handles POST /match_summary requests.
func (h *MatchHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_summary"
	req, err := decodeRequest(w, r)
	if err == nil {
		err = req.validateMatch()
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res := h.deps.Summary(r.Context(), *req.MatchID)
	writeJSON(w, http.StatusOK, summaryResponse{Summary: res.Text, Outcome: res.Outcome})
}

// HandleNarrative handles POST /narrate_match requests.
func (h *MatchHandler) HandleNarrative(w http.ResponseWriter, r *http.Request) {
	const op = "api.narrate_match"
	req, err := decodeRequest(w, r)
	if err == nil {
		err = req.validateMatch()
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res := h.deps.Narrative(r.Context(), *req.MatchID, narrative.StyleOrDefault(req.Style))
	writeJSON(w, http.StatusOK, narrativeResponse{Narrative: res.Text, Outcome: res.Outcome})
}
