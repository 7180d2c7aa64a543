// internal/app/features/imagesadmin/imagesadmin.go
package imagesadmin

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/image"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/upload"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the media library admin pages.
type Handler struct {
	imageStore *image.Store
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new imagesadmin Handler.
func NewHandler(imageStore *image.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		imageStore: imageStore,
		errLog:     errLog,
		logger:     logger,
	}
}

// Routes returns a chi.Router with media library routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Get("/upload", h.showUpload)
	r.Post("/upload", h.uploadImage)
	r.Get("/{id}/edit", h.showEdit)
	r.Post("/{id}", h.update)
	r.Post("/{id}/delete", h.delete)
	r.Post("/bulk-delete", h.bulkDelete)

	return r
}

// pageLink is one entry in the pager.
type pageLink struct {
	Number  int
	URL     string
	Current bool
}

// ListVM is the view model for the media library.
type ListVM struct {
	viewdata.BaseVM
	Images     []models.ImageAsset
	Stats      models.ImageStats
	HasStats   bool
	Category   string
	Search     string
	Categories []string
	Pages      []pageLink
	Success    string
	Error      string
}

// list displays the library with category/search filters and paging.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := image.ListQuery{
		Category: normalize.QueryParam(r.URL.Query().Get("category")),
		Search:   normalize.QueryParam(r.URL.Query().Get("search")),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}
	token := auth.Token(r)

	var (
		wg       sync.WaitGroup
		result   image.Page
		listErr  error
		stats    models.ImageStats
		statsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		result, listErr = h.imageStore.List(r.Context(), token, q)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.imageStore.Stats(r.Context(), token)
	}()
	wg.Wait()

	if listErr != nil {
		h.errLog.Log(r, "failed to list images", listErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM:     viewdata.New(r),
		Images:     result.Images,
		Category:   q.Category,
		Search:     q.Search,
		Categories: models.ImageCategories,
		Pages:      buildPager(result.Page, result.TotalPages, q),
	}
	vm.Title = "Media Library"

	// Counters failing only hides the summary cards.
	if statsErr != nil {
		h.errLog.Log(r, "failed to load image stats", statsErr)
	} else {
		vm.Stats = stats
		vm.HasStats = true
	}

	switch r.URL.Query().Get("success") {
	case "uploaded":
		vm.Success = "Image uploaded successfully"
	case "updated":
		vm.Success = "Image updated successfully"
	case "deleted":
		vm.Success = "Image deleted"
	case "bulk_deleted":
		vm.Success = "Selected images deleted"
	}
	switch r.URL.Query().Get("error") {
	case "delete_failed":
		vm.Error = "Failed to delete image"
	case "none_selected":
		vm.Error = "Select at least one image."
	case "bulk_delete_failed":
		vm.Error = "Failed to delete the selected images"
	}

	templates.Render(w, r, "imagesadmin/list", vm)
}

// buildPager renders numbered links that preserve the active filters.
func buildPager(current, total int, q image.ListQuery) []pageLink {
	if total <= 1 {
		return nil
	}
	links := make([]pageLink, 0, total)
	for n := 1; n <= total; n++ {
		params := url.Values{}
		if q.Category != "" {
			params.Set("category", q.Category)
		}
		if q.Search != "" {
			params.Set("search", q.Search)
		}
		params.Set("page", strconv.Itoa(n))
		links = append(links, pageLink{
			Number:  n,
			URL:     "/admin/images?" + params.Encode(),
			Current: n == current,
		})
	}
	return links
}

// UploadVM is the view model for the upload form.
type UploadVM struct {
	formutil.Base
	Categories  []string
	ImgTitle    string
	Description string
	Category    string
	Tags        string
	AltText     string
	Caption     string
	Credit      string
}

// showUpload displays the upload form.
func (h *Handler) showUpload(w http.ResponseWriter, r *http.Request) {
	vm := UploadVM{
		Base:       formutil.NewBase(r, "Upload Image", "/admin/images"),
		Categories: models.ImageCategories,
		Category:   "general",
	}
	templates.Render(w, r, "imagesadmin/upload", vm)
}

func uploadInput(r *http.Request) image.UploadInput {
	return image.UploadInput{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Tags:        formutil.CommaList(r.FormValue("tags")),
		AltText:     strings.TrimSpace(r.FormValue("alt_text")),
		Caption:     strings.TrimSpace(r.FormValue("caption")),
		Credit:      strings.TrimSpace(r.FormValue("credit")),
	}
}

// uploadImage adds an asset to the library.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	renderError := func(msg string) {
		vm := UploadVM{
			Base:        formutil.NewBase(r, "Upload Image", "/admin/images"),
			Categories:  models.ImageCategories,
			ImgTitle:    strings.TrimSpace(r.FormValue("title")),
			Description: strings.TrimSpace(r.FormValue("description")),
			Category:    strings.TrimSpace(r.FormValue("category")),
			Tags:        strings.TrimSpace(r.FormValue("tags")),
			AltText:     strings.TrimSpace(r.FormValue("alt_text")),
			Caption:     strings.TrimSpace(r.FormValue("caption")),
			Credit:      strings.TrimSpace(r.FormValue("credit")),
		}
		vm.SetError(msg)
		templates.Render(w, r, "imagesadmin/upload", vm)
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

	if _, err := h.imageStore.Upload(r.Context(), auth.Token(r), header.Filename, file, uploadInput(r)); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to upload image", err)
		}
		renderError(resource.FailureMessage(err, "Failed to upload image"))
		return
	}

	http.Redirect(w, r, "/admin/images?success=uploaded", http.StatusSeeOther)
}

// EditVM is the view model for the metadata edit form.
type EditVM struct {
	formutil.Base
	ID          string
	URL         string
	Categories  []string
	ImgTitle    string
	Description string
	Category    string
	Tags        string
	AltText     string
	Caption     string
	Credit      string
}

func (h *Handler) editVM(r *http.Request, id string) (EditVM, bool) {
	// The library exposes no single-asset read; the edit link carries the
	// page it came from so the asset is on the fetched page.
	q := image.ListQuery{}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		q.Page = page
	}
	result, err := h.imageStore.List(r.Context(), auth.Token(r), q)
	if err != nil {
		return EditVM{}, false
	}
	for _, asset := range result.Images {
		if asset.ID == id {
			vm := EditVM{
				Base:        formutil.NewBase(r, "Edit Image", "/admin/images"),
				ID:          id,
				URL:         asset.URL,
				Categories:  models.ImageCategories,
				ImgTitle:    asset.Title,
				Description: asset.Description,
				Category:    asset.Category,
				Tags:        strings.Join(asset.Tags, ", "),
				AltText:     asset.AltText,
				Caption:     asset.Caption,
				Credit:      asset.Credit,
			}
			return vm, true
		}
	}
	return EditVM{}, false
}

// showEdit displays the metadata edit form.
func (h *Handler) showEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	vm, ok := h.editVM(r, id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	templates.Render(w, r, "imagesadmin/edit", vm)
}

// update edits an asset's metadata.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if _, err := h.imageStore.Update(r.Context(), auth.Token(r), id, uploadInput(r)); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update image", err)
		}
		vm, ok := h.editVM(r, id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		vm.ImgTitle = strings.TrimSpace(r.FormValue("title"))
		vm.Description = strings.TrimSpace(r.FormValue("description"))
		vm.Category = strings.TrimSpace(r.FormValue("category"))
		vm.Tags = strings.TrimSpace(r.FormValue("tags"))
		vm.AltText = strings.TrimSpace(r.FormValue("alt_text"))
		vm.Caption = strings.TrimSpace(r.FormValue("caption"))
		vm.Credit = strings.TrimSpace(r.FormValue("credit"))
		vm.SetError(resource.FailureMessage(err, "Failed to update image"))
		templates.Render(w, r, "imagesadmin/edit", vm)
		return
	}

	http.Redirect(w, r, "/admin/images?success=updated", http.StatusSeeOther)
}

// delete removes one asset. The list page asks for confirmation first.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.imageStore.Delete(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete image", err)
		http.Redirect(w, r, "/admin/images?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/images?success=deleted", http.StatusSeeOther)
}

// bulkDelete removes every selected asset. The list page collects the
// selection with checkboxes and asks for confirmation before submitting.
func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ids := r.Form["ids"]
	if err := h.imageStore.BulkDelete(r.Context(), auth.Token(r), ids); err != nil {
		if resource.IsValidation(err) {
			http.Redirect(w, r, "/admin/images?error=none_selected", http.StatusSeeOther)
			return
		}
		h.errLog.Log(r, "failed to bulk delete images", err)
		http.Redirect(w, r, "/admin/images?error=bulk_delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/images?success=bulk_deleted", http.StatusSeeOther)
}
