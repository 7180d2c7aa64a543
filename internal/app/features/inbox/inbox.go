// internal/app/features/inbox/inbox.go
package inbox

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/contact"
	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// Handler provides the contact inbox pages.
type Handler struct {
	contactStore *contact.Store
	errLog       *errorsfeature.ErrorLogger
	logger       *zap.Logger
}

// NewHandler creates a new inbox Handler.
func NewHandler(contactStore *contact.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		contactStore: contactStore,
		errLog:       errLog,
		logger:       logger,
	}
}

// Routes returns a chi.Router with inbox routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.list)
	r.Get("/{id}", h.show)
	r.Post("/{id}/reply", h.reply)
	r.Post("/{id}/status", h.updateStatus)
	r.Post("/{id}/delete", h.delete)

	return r
}

// messageRow is one inbox entry, formatted for the list.
type messageRow struct {
	models.ContactMessage
	ReceivedText string
}

// ListVM is the view model for the inbox list.
type ListVM struct {
	viewdata.BaseVM
	Messages []messageRow
	Stats    models.ContactStats
	HasStats bool
	Status   string
	Statuses []string
	Success  string
	Error    string
}

// list displays the inbox, optionally filtered by lifecycle status.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(r.URL.Query().Get("status"))
	token := auth.Token(r)

	var (
		wg       sync.WaitGroup
		messages []models.ContactMessage
		listErr  error
		stats    models.ContactStats
		statsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		messages, listErr = h.contactStore.List(r.Context(), token, status)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = h.contactStore.Stats(r.Context(), token)
	}()
	wg.Wait()

	if listErr != nil {
		h.errLog.Log(r, "failed to list inbox messages", listErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM: viewdata.New(r),
		Status: status,
		Statuses: []string{
			models.ContactStatusPending,
			models.ContactStatusRead,
			models.ContactStatusReplied,
			models.ContactStatusArchived,
		},
	}
	vm.Title = "Inbox"

	for _, msg := range messages {
		vm.Messages = append(vm.Messages, messageRow{
			ContactMessage: msg,
			ReceivedText:   msg.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		})
	}

	// Counters failing only hides the summary cards.
	if statsErr != nil {
		h.errLog.Log(r, "failed to load inbox stats", statsErr)
	} else {
		vm.Stats = stats
		vm.HasStats = true
	}

	switch r.URL.Query().Get("success") {
	case "replied":
		vm.Success = "Reply sent"
	case "status_updated":
		vm.Success = "Message status updated"
	case "deleted":
		vm.Success = "Message deleted"
	}
	if r.URL.Query().Get("error") == "delete_failed" {
		vm.Error = "Failed to delete message"
	}

	templates.Render(w, r, "inbox/list", vm)
}

// ShowVM is the view model for one message.
type ShowVM struct {
	viewdata.BaseVM
	Message      messageRow
	Statuses     []string
	ReplyDraft   string
	RepliedText  string
	ErrorMessage string
}

func (h *Handler) showVM(r *http.Request, id string) (ShowVM, error) {
	// Opening a pending message marks it read on the backend.
	msg, err := h.contactStore.Get(r.Context(), auth.Token(r), id)
	if err != nil {
		return ShowVM{}, err
	}

	vm := ShowVM{
		BaseVM: viewdata.New(r),
		Message: messageRow{
			ContactMessage: msg,
			ReceivedText:   msg.CreatedAt.Format("Jan 2, 2006 3:04 PM"),
		},
		Statuses: []string{
			models.ContactStatusPending,
			models.ContactStatusRead,
			models.ContactStatusReplied,
			models.ContactStatusArchived,
		},
	}
	if msg.RepliedAt != nil {
		vm.RepliedText = msg.RepliedAt.Format("Jan 2, 2006 3:04 PM")
	}
	vm.Title = "Message from " + msg.Name
	vm.BackURL = "/admin/inbox"
	return vm, nil
}

// show displays one message with its reply form.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	vm, err := h.showVM(r, id)
	if err != nil {
		if api.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to load inbox message", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	templates.Render(w, r, "inbox/show", vm)
}

// reply sends a reply and moves the message to replied.
func (h *Handler) reply(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	replyText := strings.TrimSpace(r.FormValue("reply"))

	if _, err := h.contactStore.Reply(r.Context(), auth.Token(r), id, replyText); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to send reply", err)
		}
		vm, vmErr := h.showVM(r, id)
		if vmErr != nil {
			http.NotFound(w, r)
			return
		}
		vm.ReplyDraft = replyText
		vm.ErrorMessage = resource.FailureMessage(err, "Failed to send reply")
		templates.Render(w, r, "inbox/show", vm)
		return
	}

	http.Redirect(w, r, "/admin/inbox?success=replied", http.StatusSeeOther)
}

// updateStatus moves a message to the requested lifecycle status.
func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	status := normalize.Status(r.FormValue("status"))

	if _, err := h.contactStore.UpdateStatus(r.Context(), auth.Token(r), id, status); err != nil {
		if !resource.IsValidation(err) {
			h.errLog.Log(r, "failed to update message status", err)
		}
		vm, vmErr := h.showVM(r, id)
		if vmErr != nil {
			http.NotFound(w, r)
			return
		}
		vm.ErrorMessage = resource.FailureMessage(err, "Failed to update status")
		templates.Render(w, r, "inbox/show", vm)
		return
	}

	http.Redirect(w, r, "/admin/inbox?success=status_updated", http.StatusSeeOther)
}

// delete removes a message. The pages ask for confirmation first.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.contactStore.Delete(r.Context(), auth.Token(r), id); err != nil {
		h.errLog.Log(r, "failed to delete inbox message", err)
		http.Redirect(w, r, "/admin/inbox?error=delete_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/inbox?success=deleted", http.StatusSeeOther)
}
