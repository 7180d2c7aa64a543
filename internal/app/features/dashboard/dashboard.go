// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/store/contact"
	"github.com/kapilraj10/portfolio-web/internal/app/store/image"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the console landing page.
type Handler struct {
	contactStore *contact.Store
	imageStore   *image.Store
	logger       *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(contactStore *contact.Store, imageStore *image.Store, logger *zap.Logger) *Handler {
	return &Handler{
		contactStore: contactStore,
		imageStore:   imageStore,
		logger:       logger,
	}
}

// DashboardVM is the view model for the dashboard.
type DashboardVM struct {
	viewdata.BaseVM
	Inbox    models.ContactStats
	Library  models.ImageStats
	HasInbox bool
	HasMedia bool
}

// Routes returns a chi.Router with dashboard routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showDashboard)
	return r
}

// showDashboard displays the console landing page. The counter fetches run
// concurrently and each card simply hides when its fetch fails.
func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	token := auth.Token(r)

	vm := DashboardVM{BaseVM: viewdata.New(r)}
	vm.Title = "Dashboard"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, err := h.contactStore.Stats(r.Context(), token)
		if err != nil {
			h.logger.Warn("dashboard: inbox stats unavailable", zap.Error(err))
			return
		}
		vm.Inbox = stats
		vm.HasInbox = true
	}()
	go func() {
		defer wg.Done()
		stats, err := h.imageStore.Stats(r.Context(), token)
		if err != nil {
			h.logger.Warn("dashboard: media stats unavailable", zap.Error(err))
			return
		}
		vm.Library = stats
		vm.HasMedia = true
	}()
	wg.Wait()

	templates.Render(w, r, "dashboard/index", vm)
}
