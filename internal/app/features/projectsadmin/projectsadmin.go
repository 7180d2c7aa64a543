// internal/app/features/projectsadmin/projectsadmin.go
package projectsadmin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/project"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/upload"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the portfolio projects admin pages.
type Handler struct {
	projectStore *project.Store
	errLog       *errorsfeature.ErrorLogger
	logger       *zap.Logger
}

// NewHandler creates a new projectsadmin Handler.
func NewHandler(projectStore *project.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		projectStore: projectStore,
		errLog:       errLog,
		logger:       logger,
	}
}

// Routes returns a chi.Router with project admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Get("/new", h.showNew)
	r.Post("/new", h.create)
	r.Get("/{id}/edit", h.showEdit)
	r.Post("/{id}", h.update)
	r.Post("/{id}/image", h.uploadImage)
	r.Post("/{id}/delete", h.delete)

	return r
}

// ListVM is the view model for the project list.
type ListVM struct {
	viewdata.BaseVM
	Items   []models.Project
	Success string
	Error   string
}

// list displays all projects.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.projectStore.List(r.Context(), auth.Token(r))
	if err != nil {
		h.errLog.Log(r, "failed to list projects", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM: viewdata.New(r),
		Items:  items,
	}
	vm.Title = "Projects"

	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Project created successfully"
	case "updated":
		vm.Success = "Project updated successfully"
	case "deleted":
		vm.Success = "Project deleted"
	case "image_uploaded":
		vm.Success = "Project image uploaded"
	}
	if r.URL.Query().Get("error") == "delete_failed" {
		vm.Error = "Failed to delete project"
	}

	templates.Render(w, r, "projectsadmin/list", vm)
}

// FormVM is the view model for the new/edit project form.
type FormVM struct {
	formutil.Base
	Action       string
	Heading      string
	ID           string
	ProjTitle    string
	Description  string
	FullDesc     string
	Technologies string
	LiveURL      string
	GithubURL    string
	Gradient     string
	Featured     bool
	Order        string
	Image        string
}

func formFromRequest(r *http.Request) FormVM {
	return FormVM{
		ProjTitle:    strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		FullDesc:     strings.TrimSpace(r.FormValue("full_description")),
		Technologies: r.FormValue("technologies"),
		LiveURL:      strings.TrimSpace(r.FormValue("live_url")),
		GithubURL:    strings.TrimSpace(r.FormValue("github_url")),
		Gradient:     strings.TrimSpace(r.FormValue("gradient")),
		Featured:     r.FormValue("featured") == "on",
		Order:        strings.TrimSpace(r.FormValue("order")),
	}
}

func (vm FormVM) toModel() models.Project {
	p := models.Project{
		Title:           vm.ProjTitle,
		Description:     vm.Description,
		FullDescription: vm.FullDesc,
		Technologies:    formutil.Lines(vm.Technologies),
		LiveURL:         vm.LiveURL,
		GithubURL:       vm.GithubURL,
		Gradient:        vm.Gradient,
		Featured:        vm.Featured,
	}
	if n, err := strconv.Atoi(vm.Order); err == nil {
		p.Order = &n
	}
	return p
}

// showNew displays the new project form.
func (h *Handler) showNew(w http.ResponseWriter, r *http.Request) {
	vm := FormVM{
		Base:    formutil.NewBase(r, "Add Project", "/admin/projects"),
		Action:  "/admin/projects/new",
		Heading: "Add Project",
	}
	templates.Render(w, r, "projectsadmin/form", vm)
}

// create creates a new project.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "Add Project", "/admin/projects")
	vm.Action = "/admin/projects/new"
	vm.Heading = "Add Project"

	if _, err := h.projectStore.Create(r.Context(), auth.Token(r), vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to create project", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to create project"))
		templates.Render(w, r, "projectsadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/projects?success=created", http.StatusSeeOther)
}

// showEdit displays the edit project form.
func (h *Handler) showEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.projectStore.Get(r.Context(), auth.Token(r), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	order := ""
	if p.Order != nil {
		order = strconv.Itoa(*p.Order)
	}

	vm := FormVM{
		Base:         formutil.NewBase(r, "Edit Project", "/admin/projects"),
		Action:       "/admin/projects/" + id,
		Heading:      "Edit Project",
		ID:           id,
		ProjTitle:    p.Title,
		Description:  p.Description,
		FullDesc:     p.FullDescription,
		Technologies: formutil.JoinLines(p.Technologies),
		LiveURL:      p.LiveURL,
		GithubURL:    p.GithubURL,
		Gradient:     p.Gradient,
		Featured:     p.Featured,
		Order:        order,
		Image:        p.Image,
	}
	templates.Render(w, r, "projectsadmin/form", vm)
}

// update updates a project.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "Edit Project", "/admin/projects")
	vm.Action = "/admin/projects/" + id
	vm.Heading = "Edit Project"
	vm.ID = id

	if _, err := h.projectStore.Update(r.Context(), auth.Token(r), id, vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update project", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to update project"))
		templates.Render(w, r, "projectsadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/projects?success=updated", http.StatusSeeOther)
}

// uploadImage attaches a card image to a project. Re-renders the edit form
// with the upload error when validation or the backend rejects the file.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	renderError := func(msg string) {
		p, err := h.projectStore.Get(r.Context(), auth.Token(r), id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		order := ""
		if p.Order != nil {
			order = strconv.Itoa(*p.Order)
		}
		vm := FormVM{
			Base:         formutil.NewBase(r, "Edit Project", "/admin/projects"),
			Action:       "/admin/projects/" + id,
			Heading:      "Edit Project",
			ID:           id,
			ProjTitle:    p.Title,
			Description:  p.Description,
			FullDesc:     p.FullDescription,
			Technologies: formutil.JoinLines(p.Technologies),
			LiveURL:      p.LiveURL,
			GithubURL:    p.GithubURL,
			Gradient:     p.Gradient,
			Featured:     p.Featured,
			Order:        order,
			Image:        p.Image,
		}
		vm.SetError(msg)
		templates.Render(w, r, "projectsadmin/form", vm)
	}

	if err := r.ParseMultipartForm(upload.MaxGallerySize + 1<<20); err != nil {
		renderError("File size should not exceed 10MB")
		return
	}

	file, header, err := upload.File(r, "image", upload.MaxGallerySize)
	if err != nil {
		renderError(err.Error())
		return
	}
	defer file.Close()

	if _, err := h.projectStore.UploadImage(r.Context(), auth.Token(r), id, header.Filename, file); err != nil {
		h.errLog.Log(r, "failed to upload project image", err)
		renderError(resource.FailureMessage(err, "Failed to upload image"))
		return
	}

	http.Redirect(w, r, "/admin/projects?success=image_uploaded", http.StatusSeeOther)
}

// delete deletes a project. The list page asks for confirmation first.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectStore.Delete(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete project", err)
		http.Redirect(w, r, "/admin/projects?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/projects?success=deleted", http.StatusSeeOther)
}
