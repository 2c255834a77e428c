package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/matchlens/pkg/metrics"
)

// StatusProvider reports the state shown by the health endpoint.
type StatusProvider interface {
	GenerationEnabled() bool
	Language() string
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	status StatusProvider
}

// NewHealthHandler creates a new health handler. status may be nil.
func NewHealthHandler(status StatusProvider) *HealthHandler {
	return &HealthHandler{status: status}
}

type healthResponse struct {
	Status     string `json:"status"`
	Generation bool   `json:"generation"`
	Language   string `json:"language,omitempty"`
}

// HandleHealth handles GET /healthz requests. The service is healthy as
// long as it answers; generation being disabled is reported, not fatal.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Status: "ok"}
	if h.status != nil {
		resp.Generation = h.status.GenerationEnabled()
		resp.Language = h.status.Language()
	}
	writeJSON(w, http.StatusOK, resp)
}

// MetricsHandler serves the custom metrics registry.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
