// internal/app/features/contactinfoadmin/contactinfoadmin.go
package contactinfoadmin

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/contactinfo"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/formutil"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the public contact details admin page.
type Handler struct {
	infoStore *contactinfo.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new contactinfoadmin Handler.
func NewHandler(infoStore *contactinfo.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		infoStore: infoStore,
		errLog:    errLog,
		logger:    logger,
	}
}

// Routes returns a chi.Router with contact-info admin routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.show)
	r.Post("/", h.update)

	return r
}

// FormVM is the view model for the contact details form.
type FormVM struct {
	formutil.Base
	Email    string
	Phone    string
	Location string
	Success  string
}

// show displays the contact details form.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	info, err := h.infoStore.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact info", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := FormVM{
		Base:     formutil.NewBase(r, "Contact Details", "/admin/dashboard"),
		Email:    info.Email,
		Phone:    info.Phone,
		Location: info.Location,
	}
	if r.URL.Query().Get("success") == "updated" {
		vm.Success = "Contact details updated successfully"
	}

	templates.Render(w, r, "contactinfoadmin/form", vm)
}

// update saves the contact details.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	vm := FormVM{
		Base:     formutil.NewBase(r, "Contact Details", "/admin/dashboard"),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Location: strings.TrimSpace(r.FormValue("location")),
	}

	in := models.ContactInfo{
		Email:    vm.Email,
		Phone:    vm.Phone,
		Location: vm.Location,
	}
	if _, err := h.infoStore.Update(r.Context(), auth.Token(r), in); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update contact info", err)
		}
		vm.SetError(resource.FailureMessage(err, "Failed to update contact details"))
		templates.Render(w, r, "contactinfoadmin/form", vm)
		return
	}

	http.Redirect(w, r, "/admin/contact-info?success=updated", http.StatusSeeOther)
}
