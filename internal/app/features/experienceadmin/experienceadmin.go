// internal/app/features/experienceadmin/experienceadmin.go
package experienceadmin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/experience"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the work-history admin pages.
type Handler struct {
	experienceStore *experience.Store
	errLog          *errorsfeature.ErrorLogger
	logger          *zap.Logger
}

// NewHandler creates a new experienceadmin Handler.
func NewHandler(experienceStore *experience.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		experienceStore: experienceStore,
		errLog:          errLog,
		logger:          logger,
	}
}

// Routes returns a chi.Router with experience admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Get("/new", h.showNew)
	r.Post("/new", h.create)
	r.Get("/{id}/edit", h.showEdit)
	r.Post("/{id}", h.update)
	r.Post("/{id}/delete", h.delete)

	return r
}

// ListVM is the view model for the experience list.
type ListVM struct {
	viewdata.BaseVM
	Items   []models.Experience
	Success string
	Error   string
}

// list displays all experience entries.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.experienceStore.List(r.Context(), auth.Token(r))
	if err != nil {
		h.errLog.Log(r, "failed to list experiences", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM: viewdata.New(r),
		Items:  items,
	}
	vm.Title = "Experience"

	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Experience created successfully"
	case "updated":
		vm.Success = "Experience updated successfully"
	case "deleted":
		vm.Success = "Experience deleted"
	}
	if r.URL.Query().Get("error") == "delete_failed" {
		vm.Error = "Failed to delete experience"
	}

	templates.Render(w, r, "experienceadmin/list", vm)
}

// FormVM is the view model for the new/edit experience form. The same
// template serves both; Action decides where it posts.
type FormVM struct {
	formutil.Base
	Action       string
	Heading      string
	ID           string
	Role         string
	Company      string
	Location     string
	Period       string
	Duration     string
	Type         string
	Description  string
	Achievements string
	Technologies string
	Icon         string
	Gradient     string
	Order        string
}

func formFromRequest(r *http.Request) FormVM {
	return FormVM{
		Role:         strings.TrimSpace(r.FormValue("role")),
		Company:      strings.TrimSpace(r.FormValue("company")),
		Location:     strings.TrimSpace(r.FormValue("location")),
		Period:       strings.TrimSpace(r.FormValue("period")),
		Duration:     strings.TrimSpace(r.FormValue("duration")),
		Type:         strings.TrimSpace(r.FormValue("type")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Achievements: r.FormValue("achievements"),
		Technologies: r.FormValue("technologies"),
		Icon:         strings.TrimSpace(r.FormValue("icon")),
		Gradient:     strings.TrimSpace(r.FormValue("gradient")),
		Order:        strings.TrimSpace(r.FormValue("order")),
	}
}

func (vm FormVM) toModel() models.Experience {
	exp := models.Experience{
		Role:         vm.Role,
		Company:      vm.Company,
		Location:     vm.Location,
		Period:       vm.Period,
		Duration:     vm.Duration,
		Type:         vm.Type,
		Description:  vm.Description,
		Achievements: formutil.Lines(vm.Achievements),
		Technologies: formutil.Lines(vm.Technologies),
		Icon:         vm.Icon,
		Gradient:     vm.Gradient,
	}
	if n, err := strconv.Atoi(vm.Order); err == nil {
		exp.Order = &n
	}
	return exp
}

// showNew displays the new experience form.
func (h *Handler) showNew(w http.ResponseWriter, r *http.Request) {
	vm := FormVM{
		Base:    formutil.NewBase(r, "Add Experience", "/admin/experiences"),
		Action:  "/admin/experiences/new",
		Heading: "Add Experience",
	}
	templates.Render(w, r, "experienceadmin/form", vm)
}

// create creates a new experience entry.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "Add Experience", "/admin/experiences")
	vm.Action = "/admin/experiences/new"
	vm.Heading = "Add Experience"

	if _, err := h.experienceStore.Create(r.Context(), auth.Token(r), vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to create experience", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to create experience"))
		templates.Render(w, r, "experienceadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/experiences?success=created", http.StatusSeeOther)
}

// showEdit displays the edit experience form.
func (h *Handler) showEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	exp, err := h.experienceStore.Get(r.Context(), auth.Token(r), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	order := ""
	if exp.Order != nil {
		order = strconv.Itoa(*exp.Order)
	}

	vm := FormVM{
		Base:         formutil.NewBase(r, "Edit Experience", "/admin/experiences"),
		Action:       "/admin/experiences/" + id,
		Heading:      "Edit Experience",
		ID:           id,
		Role:         exp.Role,
		Company:      exp.Company,
		Location:     exp.Location,
		Period:       exp.Period,
		Duration:     exp.Duration,
		Type:         exp.Type,
		Description:  exp.Description,
		Achievements: formutil.JoinLines(exp.Achievements),
		Technologies: formutil.JoinLines(exp.Technologies),
		Icon:         exp.Icon,
		Gradient:     exp.Gradient,
		Order:        order,
	}
	templates.Render(w, r, "experienceadmin/form", vm)
}

// update updates an experience entry.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "Edit Experience", "/admin/experiences")
	vm.Action = "/admin/experiences/" + id
	vm.Heading = "Edit Experience"
	vm.ID = id

	if _, err := h.experienceStore.Update(r.Context(), auth.Token(r), id, vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update experience", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to update experience"))
		templates.Render(w, r, "experienceadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/experiences?success=updated", http.StatusSeeOther)
}

// delete deletes an experience entry. The list page asks for confirmation
// before this form is submitted.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.experienceStore.Delete(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete experience", err)
		http.Redirect(w, r, "/admin/experiences?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/experiences?success=deleted", http.StatusSeeOther)
}
