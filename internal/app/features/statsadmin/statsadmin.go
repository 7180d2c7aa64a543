// internal/app/features/statsadmin/statsadmin.go
package statsadmin

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/projectstats"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the site-statistics admin page.
type Handler struct {
	statsStore *projectstats.Store
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new statsadmin Handler.
func NewHandler(statsStore *projectstats.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		statsStore: statsStore,
		errLog:     errLog,
		logger:     logger,
	}
}

// Routes returns a chi.Router with stats admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.show)
	r.Post("/", h.update)
	r.Post("/reset", h.reset)

	return r
}

// historyRow is one past revision, formatted for the table.
type historyRow struct {
	models.StatsSnapshot
	RecordedAtText string
}

// PageVM is the view model for the stats admin page.
type PageVM struct {
	viewdata.BaseVM
	Stats      models.ProjectStats
	History    []historyRow
	HasHistory bool
	Success    string
	Error      string
}

func (h *Handler) pageVM(r *http.Request) (PageVM, error) {
	vm := PageVM{BaseVM: viewdata.New(r)}
	vm.Title = "Site Statistics"

	var (
		wg         sync.WaitGroup
		statsErr   error
		history    []models.StatsSnapshot
		historyErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		vm.Stats, statsErr = h.statsStore.Get(r.Context())
	}()
	go func() {
		defer wg.Done()
		history, historyErr = h.statsStore.History(r.Context(), auth.Token(r))
	}()
	wg.Wait()

	if statsErr != nil {
		return PageVM{}, statsErr
	}
	// History failing only hides the table; the counters still render.
	if historyErr != nil {
		h.errLog.Log(r, "failed to load stats history", historyErr)
	} else {
		vm.HasHistory = true
		for _, snap := range history {
			vm.History = append(vm.History, historyRow{
				StatsSnapshot:  snap,
				RecordedAtText: snap.RecordedAt.Format("Jan 2, 2006 3:04 PM"),
			})
		}
	}
	return vm, nil
}

// show displays the counters with their revision history.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	vm, err := h.pageVM(r)
	if err != nil {
		h.errLog.Log(r, "failed to load project stats", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("success") {
	case "updated":
		vm.Success = "Statistics updated successfully"
	case "reset":
		vm.Success = "Statistics reset to defaults"
	}

	templates.Render(w, r, "statsadmin/show", vm)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg string) {
	vm, err := h.pageVM(r)
	if err != nil {
		h.errLog.Log(r, "failed to load project stats", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	vm.Error = msg
	templates.Render(w, r, "statsadmin/show", vm)
}

func counter(r *http.Request, field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return 0
	}
	return n
}

// update replaces the counters.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := models.ProjectStats{
		CompletedProjects: counter(r, "completed_projects"),
		OngoingProjects:   counter(r, "ongoing_projects"),
		HappyClients:      counter(r, "happy_clients"),
		YearsExperience:   counter(r, "years_experience"),
	}

	if _, err := h.statsStore.Update(r.Context(), auth.Token(r), in); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update project stats", err)
		}
		h.renderError(w, r, resource.FailureMessage(err, "Failed to update statistics"))
		return
	}

	http.Redirect(w, r, "/admin/stats?success=updated", http.StatusSeeOther)
}

// reset restores the default counters. The page asks for confirmation
// before this form is submitted.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.statsStore.Reset(r.Context(), auth.Token(r)); err != nil {
		h.errLog.Log(r, "failed to reset project stats", err)
		h.renderError(w, r, resource.FailureMessage(err, "Failed to reset statistics"))
		return
	}

	http.Redirect(w, r, "/admin/stats?success=reset", http.StatusSeeOther)
}
