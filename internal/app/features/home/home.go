// internal/app/features/home/home.go
package home

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	aboutstore "github.com/kapilraj10/portfolio-web/internal/app/store/about"
	contactinfostore "github.com/kapilraj10/portfolio-web/internal/app/store/contactinfo"
	experiencestore "github.com/kapilraj10/portfolio-web/internal/app/store/experience"
	projectstore "github.com/kapilraj10/portfolio-web/internal/app/store/project"
	statsstore "github.com/kapilraj10/portfolio-web/internal/app/store/projectstats"
	"github.com/kapilraj10/portfolio-web/internal/app/system/icons"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the public landing page.
type Handler struct {
	aboutStore       *aboutstore.Store
	experienceStore  *experiencestore.Store
	projectStore     *projectstore.Store
	statsStore       *statsstore.Store
	contactInfoStore *contactinfostore.Store
	logger           *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(
	aboutStore *aboutstore.Store,
	experienceStore *experiencestore.Store,
	projectStore *projectstore.Store,
	statsStore *statsstore.Store,
	contactInfoStore *contactinfostore.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		aboutStore:       aboutStore,
		experienceStore:  experienceStore,
		projectStore:     projectStore,
		statsStore:       statsStore,
		contactInfoStore: contactInfoStore,
		logger:           logger,
	}
}

// expertiseCard is one rendered expertise entry with its resolved icon.
type expertiseCard struct {
	Title       string
	Description string
	Icon        template.HTML
	Color       string
}

// HomeVM is the view model for the landing page.
type HomeVM struct {
	viewdata.BaseVM
	Profile      models.Profile
	Stats        models.AboutStats
	Expertise    []expertiseCard
	Technologies []models.TechnologyItem
	Experiences  []models.Experience
	Projects     []models.Project
	SiteStats    models.ProjectStats
	ContactInfo  models.ContactInfo
	Sent         bool
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the landing page. Each section fetch runs concurrently and
// falls back to its default content independently, so one backend failure
// never blanks the whole page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	about := models.DefaultAbout()
	var experiences []models.Experience
	var projects []models.Project
	siteStats := models.DefaultProjectStats()
	contactInfo := models.DefaultContactInfo()

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		got, err := h.aboutStore.Get(ctx)
		if err != nil || got.Profile.Name == "" {
			if err != nil {
				h.logger.Warn("home: about unavailable, using defaults", zap.Error(err))
			}
			return
		}
		about = got
	}()
	go func() {
		defer wg.Done()
		got, err := h.experienceStore.List(ctx, "")
		if err != nil {
			h.logger.Warn("home: experiences unavailable", zap.Error(err))
			return
		}
		experiences = got
	}()
	go func() {
		defer wg.Done()
		got, err := h.projectStore.List(ctx, "")
		if err != nil {
			h.logger.Warn("home: projects unavailable", zap.Error(err))
			return
		}
		projects = got
	}()
	go func() {
		defer wg.Done()
		got, err := h.statsStore.Get(ctx)
		if err != nil {
			h.logger.Warn("home: project stats unavailable, using defaults", zap.Error(err))
			return
		}
		siteStats = got
	}()
	go func() {
		defer wg.Done()
		got, err := h.contactInfoStore.Get(ctx)
		if err != nil || got.Email == "" {
			if err != nil {
				h.logger.Warn("home: contact info unavailable, using defaults", zap.Error(err))
			}
			return
		}
		contactInfo = got
	}()
	wg.Wait()

	cards := make([]expertiseCard, 0, len(about.Expertise))
	for _, item := range about.SortedExpertise() {
		cards = append(cards, expertiseCard{
			Title:       item.Title,
			Description: item.Description,
			Icon:        icons.Resolve(item.Icon),
			Color:       item.Color,
		})
	}

	vm := HomeVM{
		BaseVM:       viewdata.New(r),
		Profile:      about.Profile,
		Stats:        about.Stats,
		Expertise:    cards,
		Technologies: about.ActiveTechnologies(),
		Experiences:  experiences,
		Projects:     projects,
		SiteStats:    siteStats,
		ContactInfo:  contactInfo,
		Sent:         r.URL.Query().Get("sent") == "1",
	}
	vm.Title = "Home"

	templates.Render(w, r, "home/index", vm)
}
