// internal/app/features/aboutadmin/aboutadmin.go
package aboutadmin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/about"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/icons"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/upload"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the about-section admin page: profile, headline stats,
// expertise cards, and the technology marquee, all edited in one place.
type Handler struct {
	aboutStore *about.Store
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new aboutadmin Handler.
func NewHandler(aboutStore *about.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		aboutStore: aboutStore,
		errLog:     errLog,
		logger:     logger,
	}
}

// Routes returns a chi.Router with about admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.show)
	r.Post("/profile", h.updateProfile)
	r.Post("/profile/image", h.uploadProfileImage)
	r.Post("/expertise", h.addExpertise)
	r.Post("/expertise/{id}/delete", h.deleteExpertise)
	r.Post("/technology", h.addTechnology)
	r.Post("/technology/{id}/delete", h.deleteTechnology)
	r.Post("/technology/{id}/icon", h.uploadTechnologyIcon)

	return r
}

// PageVM is the view model for the about admin page.
type PageVM struct {
	viewdata.BaseVM
	About     models.About
	Bio       string
	IconNames []string
	Success   string
	Error     string
}

func (h *Handler) pageVM(r *http.Request) (PageVM, error) {
	doc, err := h.aboutStore.Get(r.Context())
	if err != nil {
		return PageVM{}, err
	}
	vm := PageVM{
		BaseVM:    viewdata.New(r),
		About:     doc,
		Bio:       formutil.JoinLines(doc.Profile.Bio),
		IconNames: icons.Names(),
	}
	vm.Title = "About Section"
	return vm, nil
}

// show displays the about admin page.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	vm, err := h.pageVM(r)
	if err != nil {
		h.errLog.Log(r, "failed to load about document", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("success") {
	case "profile_updated":
		vm.Success = "Profile updated successfully"
	case "image_uploaded":
		vm.Success = "Profile image uploaded"
	case "expertise_added":
		vm.Success = "Expertise card added"
	case "expertise_deleted":
		vm.Success = "Expertise card removed"
	case "technology_added":
		vm.Success = "Technology added"
	case "technology_deleted":
		vm.Success = "Technology removed"
	case "icon_uploaded":
		vm.Success = "Technology icon uploaded"
	}

	templates.Render(w, r, "aboutadmin/show", vm)
}

// renderError re-renders the page with an inline error banner.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg string) {
	vm, err := h.pageVM(r)
	if err != nil {
		h.errLog.Log(r, "failed to load about document", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	vm.Error = msg
	templates.Render(w, r, "aboutadmin/show", vm)
}

func statValue(r *http.Request, field, label string) models.StatValue {
	v := models.StatValue{Label: strings.TrimSpace(r.FormValue(label))}
	if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field))); err == nil {
		v.Value = n
	}
	return v
}

// updateProfile saves the identity block and headline stats.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := about.ProfileInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Bio:         formutil.Lines(r.FormValue("bio")),
		Badge:       strings.TrimSpace(r.FormValue("badge")),
		StatusText:  strings.TrimSpace(r.FormValue("status_text")),
		IsAvailable: r.FormValue("is_available") == "on",
		Stats: models.AboutStats{
			Projects:     statValue(r, "projects_value", "projects_label"),
			Experience:   statValue(r, "experience_value", "experience_label"),
			Satisfaction: statValue(r, "satisfaction_value", "satisfaction_label"),
		},
	}

	if _, err := h.aboutStore.UpdateProfile(r.Context(), auth.Token(r), in); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update profile", err)
		}
		h.renderError(w, r, resource.FailureMessage(err, "Failed to update profile"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=profile_updated", http.StatusSeeOther)
}

// uploadProfileImage replaces the profile photo.
func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(upload.MaxIconSize + 1<<20); err != nil {
		h.renderError(w, r, "Image size should be less than 5MB")
		return
	}

	file, header, err := upload.File(r, "image", upload.MaxIconSize)
	if err != nil {
		h.renderError(w, r, err.Error())
		return
	}
	defer file.Close()

	if _, err := h.aboutStore.UploadProfileImage(r.Context(), auth.Token(r), header.Filename, file); err != nil {
		h.errLog.Log(r, "failed to upload profile image", err)
		h.renderError(w, r, resource.FailureMessage(err, "Failed to upload image"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=image_uploaded", http.StatusSeeOther)
}

// addExpertise appends one card to the expertise grid.
func (h *Handler) addExpertise(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	item := models.ExpertiseItem{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Icon:        strings.TrimSpace(r.FormValue("icon")),
		Color:       strings.TrimSpace(r.FormValue("color")),
	}
	if item.Icon == "" || !icons.Known(item.Icon) {
		item.Icon = icons.Default
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue("order"))); err == nil {
		item.Order = &n
	}

	if _, err := h.aboutStore.AddExpertise(r.Context(), auth.Token(r), item); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to add expertise", err)
		}
		h.renderError(w, r, resource.FailureMessage(err, "Failed to add expertise card"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=expertise_added", http.StatusSeeOther)
}

// deleteExpertise removes one expertise card.
func (h *Handler) deleteExpertise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.aboutStore.DeleteExpertise(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete expertise", err)
		h.renderError(w, r, resource.FailureMessage(err, "Failed to remove expertise card"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=expertise_deleted", http.StatusSeeOther)
}

// addTechnology appends one marquee entry.
func (h *Handler) addTechnology(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	item := models.TechnologyItem{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Icon:   strings.TrimSpace(r.FormValue("icon")),
		Color:  strings.TrimSpace(r.FormValue("color")),
		Active: r.FormValue("is_active") == "on",
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.FormValue("order"))); err == nil {
		item.Order = &n
	}

	if _, err := h.aboutStore.AddTechnology(r.Context(), auth.Token(r), item); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to add technology", err)
		}
		h.renderError(w, r, resource.FailureMessage(err, "Failed to add technology"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=technology_added", http.StatusSeeOther)
}

// deleteTechnology removes one marquee entry.
func (h *Handler) deleteTechnology(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.aboutStore.DeleteTechnology(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete technology", err)
		h.renderError(w, r, resource.FailureMessage(err, "Failed to remove technology"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=technology_deleted", http.StatusSeeOther)
}

// uploadTechnologyIcon replaces one technology's icon image.
func (h *Handler) uploadTechnologyIcon(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(upload.MaxIconSize + 1<<20); err != nil {
		h.renderError(w, r, "Image size should be less than 5MB")
		return
	}

	file, header, err := upload.File(r, "icon", upload.MaxIconSize)
	if err != nil {
		h.renderError(w, r, err.Error())
		return
	}
	defer file.Close()

	if _, err := h.aboutStore.UploadTechnologyIcon(r.Context(), auth.Token(r), id, header.Filename, file); err != nil {
		h.errLog.Log(r, "failed to upload technology icon", err)
		h.renderError(w, r, resource.FailureMessage(err, "Failed to upload icon"))
		return
	}

	http.Redirect(w, r, "/admin/about?success=icon_uploaded", http.StatusSeeOther)
}
