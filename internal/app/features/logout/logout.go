// internal/app/features/logout/logout.go
package logout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
)

// Handler provides logout handlers.
type Handler struct {
	sessionMgr *auth.SessionManager
	logger     *zap.Logger
}

// NewHandler creates a new logout Handler.
func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		sessionMgr: sessionMgr,
		logger:     logger,
	}
}

// Routes returns a chi.Router with logout routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.handleLogout)
	r.Get("/", h.handleLogout) // Allow GET for simple logout links
	return r
}

// handleLogout destroys the local session. The bearer token is discarded
// with it; the backend token simply goes unused after this.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.CurrentUser(r); ok {
		h.logger.Info("admin signed out", zap.String("email", user.Email))
	}

	h.sessionMgr.DestroySession(w, r)

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
