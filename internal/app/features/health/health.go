// internal/app/features/health/health.go
package health

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides health check endpoints. The site has no database of its
// own; content availability is a per-request concern with fallbacks, so the
// checks report only process liveness.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new health check Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Response represents the health check response.
type Response struct {
	Status string `json:"status"`
}

// Routes returns a chi.Router with health check routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds probe endpoints directly on the root router:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Live)
	r.Get("/readyz", h.Live)
	r.Get("/livez", h.Live)
}

// Check reports service health.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Status: "ok"})
}

// Live checks if the service is alive.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"alive"}`))
}
