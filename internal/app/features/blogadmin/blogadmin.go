// internal/app/features/blogadmin/blogadmin.go
package blogadmin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	blogstore "github.com/kapilraj10/portfolio-web/internal/app/store/blog"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/upload"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the blog admin pages.
type Handler struct {
	blogStore *blogstore.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new blogadmin Handler.
func NewHandler(blogStore *blogstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		blogStore: blogStore,
		errLog:    errLog,
		logger:    logger,
	}
}

// Routes returns a chi.Router with blog admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Get("/new", h.showNew)
	r.Post("/new", h.create)
	r.Get("/{id}/edit", h.showEdit)
	r.Post("/{id}", h.update)
	r.Post("/{id}/cover", h.uploadCover)
	r.Post("/{id}/delete", h.delete)

	return r
}

// ListVM is the view model for the blog admin list. Drafts are included.
type ListVM struct {
	viewdata.BaseVM
	Items   []models.BlogPost
	Success string
	Error   string
}

// list displays every post, published or not.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.blogStore.AdminList(r.Context(), auth.Token(r))
	if err != nil {
		h.errLog.Log(r, "failed to list blog posts", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM: viewdata.New(r),
		Items:  items,
	}
	vm.Title = "Blog Posts"

	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Post created successfully"
	case "updated":
		vm.Success = "Post updated successfully"
	case "deleted":
		vm.Success = "Post deleted"
	case "cover_uploaded":
		vm.Success = "Cover image uploaded"
	}
	if r.URL.Query().Get("error") == "delete_failed" {
		vm.Error = "Failed to delete post"
	}

	templates.Render(w, r, "blogadmin/list", vm)
}

// FormVM is the view model for the new/edit post form.
type FormVM struct {
	formutil.Base
	Action           string
	Heading          string
	ID               string
	PostTitle        string
	Slug             string
	Excerpt          string
	ProblemStatement string
	TechStack        string
	Architecture     string
	Implementation   string
	Challenges       string
	Learnings        string
	GithubURL        string
	LiveURL          string
	ProjectID        string
	Tags             string
	Author           string
	ReadTime         string
	Featured         bool
	Published        bool
	CoverImage       string
}

func formFromRequest(r *http.Request) FormVM {
	vm := FormVM{
		PostTitle:        strings.TrimSpace(r.FormValue("title")),
		Slug:             normalize.Slug(r.FormValue("slug")),
		Excerpt:          strings.TrimSpace(r.FormValue("excerpt")),
		ProblemStatement: strings.TrimSpace(r.FormValue("problem_statement")),
		TechStack:        r.FormValue("tech_stack"),
		Architecture:     strings.TrimSpace(r.FormValue("architecture")),
		Implementation:   strings.TrimSpace(r.FormValue("implementation")),
		Challenges:       strings.TrimSpace(r.FormValue("challenges")),
		Learnings:        strings.TrimSpace(r.FormValue("learnings")),
		GithubURL:        strings.TrimSpace(r.FormValue("github_url")),
		LiveURL:          strings.TrimSpace(r.FormValue("live_url")),
		ProjectID:        strings.TrimSpace(r.FormValue("project_id")),
		Tags:             strings.TrimSpace(r.FormValue("tags")),
		Author:           strings.TrimSpace(r.FormValue("author")),
		ReadTime:         strings.TrimSpace(r.FormValue("read_time")),
		Featured:         r.FormValue("featured") == "on",
		Published:        r.FormValue("published") == "on",
	}
	// Blank slug falls back to one derived from the title.
	if vm.Slug == "" {
		vm.Slug = normalize.Slug(vm.PostTitle)
	}
	return vm
}

func (vm FormVM) toModel() models.BlogPost {
	post := models.BlogPost{
		Title:            vm.PostTitle,
		Slug:             vm.Slug,
		Excerpt:          vm.Excerpt,
		ProblemStatement: vm.ProblemStatement,
		TechStack:        formutil.Lines(vm.TechStack),
		Architecture:     vm.Architecture,
		Implementation:   vm.Implementation,
		Challenges:       vm.Challenges,
		Learnings:        vm.Learnings,
		GithubURL:        vm.GithubURL,
		LiveURL:          vm.LiveURL,
		Tags:             formutil.CommaList(vm.Tags),
		Author:           vm.Author,
		Featured:         vm.Featured,
		Published:        vm.Published,
	}
	if n, err := strconv.Atoi(vm.ReadTime); err == nil {
		post.ReadTime = n
	}
	if vm.ProjectID != "" {
		post.Project = &models.BlogProjectRef{ID: vm.ProjectID}
	}
	return post
}

// showNew displays the new post form.
func (h *Handler) showNew(w http.ResponseWriter, r *http.Request) {
	vm := FormVM{
		Base:    formutil.NewBase(r, "New Post", "/admin/blogs"),
		Action:  "/admin/blogs/new",
		Heading: "New Post",
	}
	templates.Render(w, r, "blogadmin/form", vm)
}

// create creates a new post.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "New Post", "/admin/blogs")
	vm.Action = "/admin/blogs/new"
	vm.Heading = "New Post"

	if _, err := h.blogStore.Create(r.Context(), auth.Token(r), vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to create blog post", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to create post"))
		templates.Render(w, r, "blogadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=created", http.StatusSeeOther)
}

func formFromPost(r *http.Request, id string, post models.BlogPost) FormVM {
	readTime := ""
	if post.ReadTime > 0 {
		readTime = strconv.Itoa(post.ReadTime)
	}
	projectID := ""
	if post.Project != nil {
		projectID = post.Project.ID
	}
	vm := FormVM{
		Base:             formutil.NewBase(r, "Edit Post", "/admin/blogs"),
		Action:           "/admin/blogs/" + id,
		Heading:          "Edit Post",
		ID:               id,
		PostTitle:        post.Title,
		Slug:             post.Slug,
		Excerpt:          post.Excerpt,
		ProblemStatement: post.ProblemStatement,
		TechStack:        formutil.JoinLines(post.TechStack),
		Architecture:     post.Architecture,
		Implementation:   post.Implementation,
		Challenges:       post.Challenges,
		Learnings:        post.Learnings,
		GithubURL:        post.GithubURL,
		LiveURL:          post.LiveURL,
		ProjectID:        projectID,
		Tags:             strings.Join(post.Tags, ", "),
		Author:           post.Author,
		ReadTime:         readTime,
		Featured:         post.Featured,
		Published:        post.Published,
		CoverImage:       post.CoverImage,
	}
	return vm
}

// showEdit displays the edit post form.
func (h *Handler) showEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.blogStore.Get(r.Context(), auth.Token(r), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	templates.Render(w, r, "blogadmin/form", formFromPost(r, id, post))
}

// update updates a post.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := formFromRequest(r)
	vm.Base = formutil.NewBase(r, "Edit Post", "/admin/blogs")
	vm.Action = "/admin/blogs/" + id
	vm.Heading = "Edit Post"
	vm.ID = id

	if _, err := h.blogStore.Update(r.Context(), auth.Token(r), id, vm.toModel()); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update blog post", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to update post"))
		templates.Render(w, r, "blogadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=updated", http.StatusSeeOther)
}

// uploadCover attaches a cover image to a post.
func (h *Handler) uploadCover(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	renderError := func(msg string) {
		post, err := h.blogStore.Get(r.Context(), auth.Token(r), id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		vm := formFromPost(r, id, post)
		vm.SetError(msg)
		templates.Render(w, r, "blogadmin/form", vm)
	}

	if err := r.ParseMultipartForm(upload.MaxGallerySize + 1<<20); err != nil {
		renderError("File size should not exceed 10MB")
		return
	}

	file, header, err := upload.File(r, "coverImage", upload.MaxGallerySize)
	if err != nil {
		renderError(err.Error())
		return
	}
	defer file.Close()

	if _, err := h.blogStore.UploadCover(r.Context(), auth.Token(r), id, header.Filename, file); err != nil {
		h.errLog.Log(r, "failed to upload cover image", err)
		renderError(resource.FailureMessage(err, "Failed to upload cover image"))
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=cover_uploaded", http.StatusSeeOther)
}

// delete deletes a post. The list page asks for confirmation first.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.blogStore.Delete(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete blog post", err)
		http.Redirect(w, r, "/admin/blogs?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/blogs?success=deleted", http.StatusSeeOther)
}
