// internal/app/features/login/login.go
package login

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	"github.com/kapilraj10/portfolio-web/internal/app/store/adminauth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/app/system/resource"
	"github.com/kapilraj10/portfolio-web/internal/app/system/viewdata"
)

// accessDeniedMsg is shown when a verified account's role may not enter
// the console. The session is never created in that case.
const accessDeniedMsg = "Access denied. Admin privileges required."

// Handler provides the two-phase console sign-in.
type Handler struct {
	authStore  *adminauth.Store
	sessionMgr *auth.SessionManager
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new login Handler.
func NewHandler(
	authStore *adminauth.Store,
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		authStore:  authStore,
		sessionMgr: sessionMgr,
		errLog:     errLog,
		logger:     logger,
	}
}

// CredentialsVM is the view model for the email/password step.
type CredentialsVM struct {
	viewdata.BaseVM
	Email string
	Error string
}

// OTPVM is the view model for the verification step.
type OTPVM struct {
	viewdata.BaseVM
	Email string
	Error string
}

// Routes returns a chi.Router with login routes mounted. These are the
// only /admin routes outside the console guard.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showLogin)
	r.Post("/", h.submitCredentials)
	r.Post("/verify", h.verifyOTP)
	r.Get("/back", h.backToCredentials)
	return r
}

// showLogin renders the credentials form, or the OTP form when a login is
// already pending in the session.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.CurrentUser(r); ok && user.BearerToken() != "" {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	if pending := h.sessionMgr.PendingLogin(r); pending != "" {
		vm := OTPVM{BaseVM: viewdata.New(r), Email: pending}
		vm.Title = "Verify Sign In"
		templates.Render(w, r, "login/otp", vm)
		return
	}

	vm := CredentialsVM{BaseVM: viewdata.New(r)}
	vm.Title = "Admin Sign In"
	templates.Render(w, r, "login/credentials", vm)
}

// submitCredentials forwards the credentials to the backend. On success the
// backend has emailed an OTP and the flow advances to verification.
func (h *Handler) submitCredentials(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	renderError := func(msg string) {
		vm := CredentialsVM{BaseVM: viewdata.New(r), Email: email, Error: msg}
		vm.Title = "Admin Sign In"
		templates.Render(w, r, "login/credentials", vm)
	}

	if err := h.authStore.Login(r.Context(), email, password); err != nil {
		if resource.IsValidation(err) {
			renderError(err.Error())
			return
		}
		h.errLog.Log(r, "login request failed", err)
		renderError(api.ErrorMessage(err, "Unable to sign in right now. Please try again."))
		return
	}

	if err := h.sessionMgr.SetPendingLogin(w, r, email); err != nil {
		h.errLog.Log(r, "failed to store pending login", err)
		renderError("Unable to sign in right now. Please try again.")
		return
	}

	vm := OTPVM{BaseVM: viewdata.New(r), Email: email}
	vm.Title = "Verify Sign In"
	templates.Render(w, r, "login/otp", vm)
}

// verifyOTP exchanges the emailed code for a session. Roles outside the
// console set are rejected without persisting anything.
func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := h.sessionMgr.PendingLogin(r)
	if email == "" {
		email = normalize.Email(r.FormValue("email"))
	}
	otp := strings.TrimSpace(r.FormValue("otp"))

	if email == "" {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	renderError := func(msg string) {
		vm := OTPVM{BaseVM: viewdata.New(r), Email: email, Error: msg}
		vm.Title = "Verify Sign In"
		templates.Render(w, r, "login/otp", vm)
	}

	token, user, err := h.authStore.VerifyOTP(r.Context(), email, otp)
	if err != nil {
		if resource.IsValidation(err) {
			renderError(err.Error())
			return
		}
		h.errLog.Log(r, "otp verification failed", err)
		renderError(api.ErrorMessage(err, "Verification failed. Please try again."))
		return
	}

	if !user.CanAccessConsole() {
		h.logger.Warn("console access denied",
			zap.String("email", user.Email),
			zap.String("role", user.Role))
		renderError(accessDeniedMsg)
		return
	}

	h.sessionMgr.ClearPendingLogin(w, r)
	name := user.Name
	if name == "" {
		name = user.Email
	}
	if err := h.sessionMgr.CreateSession(w, r, name, user.Email, user.Role, token); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		renderError("Unable to sign in right now. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// backToCredentials abandons the pending OTP and returns to the first step.
func (h *Handler) backToCredentials(w http.ResponseWriter, r *http.Request) {
	h.sessionMgr.ClearPendingLogin(w, r)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
