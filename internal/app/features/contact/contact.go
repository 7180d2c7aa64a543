// internal/app/features/contact/contact.go
package contact

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	contactstore "github.com/kapilraj10/portfolio-web/internal/app/store/contact"
	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
)

// Handler provides the public contact form.
type Handler struct {
	contactStore *contactstore.Store
	errLog       *errorsfeature.ErrorLogger
	logger       *zap.Logger
}

// NewHandler creates a new contact Handler.
func NewHandler(contactStore *contactstore.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		contactStore: contactStore,
		errLog:       errLog,
		logger:       logger,
	}
}

// FormVM is the view model for the contact form page. Submitted values are
// echoed back when validation fails.
type FormVM struct {
	viewdata.BaseVM
	Name        string
	Email       string
	Message     string
	MeetingTime string
	MeetingType string
	Error       string
}

// Routes returns a chi.Router with contact routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showForm)
	r.Post("/", h.submit)
	return r
}

// showForm renders the standalone contact page.
func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	vm := FormVM{BaseVM: viewdata.New(r)}
	vm.Title = "Contact"
	templates.Render(w, r, "contact/form", vm)
}

// submit forwards the message to the backend. Success redirects to the
// landing page with the sent notice, which also clears the form.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := contactstore.SubmitInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Message:     strings.TrimSpace(r.FormValue("message")),
		MeetingTime: strings.TrimSpace(r.FormValue("meeting_time")),
		MeetingType: strings.TrimSpace(r.FormValue("meeting_type")),
	}

	if err := h.contactStore.Submit(r.Context(), in); err != nil {
		msg := "Unable to send your message right now. Please try again."
		if resource.IsValidation(err) {
			msg = err.Error()
		} else {
			h.errLog.Log(r, "contact submission failed", err)
			msg = api.ErrorMessage(err, msg)
		}

		vm := FormVM{
			BaseVM:      viewdata.New(r),
			Name:        in.Name,
			Email:       in.Email,
			Message:     in.Message,
			MeetingTime: in.MeetingTime,
			MeetingType: in.MeetingType,
			Error:       msg,
		}
		vm.Title = "Contact"
		templates.Render(w, r, "contact/form", vm)
		return
	}

	http.Redirect(w, r, "/?sent=1", http.StatusSeeOther)
}
