package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
)

// Session error classification for logging and monitoring.
type sessionErrorType int

const (
	sessionErrUnknown   sessionErrorType = iota // unclassified decode failure
	sessionErrExpired                           // timestamp expired - normal
	sessionErrTampered                          // MAC invalid - potential attack
	sessionErrCorrupted                         // decode/decrypt failed - corruption or key rotation
	sessionErrBackend                           // store/backend failure
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey       = "is_authenticated"
	userNameKey     = "user_name"
	userEmailKey    = "user_email"
	userRoleKey     = "user_role"
	apiTokenKey     = "api_token"
	pendingEmailKey = "pending_email"
)

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager - injectable session management                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager encapsulates session store and configuration.
// It provides middleware and utilities for session-based authentication.
// Use NewSessionManager to create an instance.
//
// The session carries the bearer token the backend issued after OTP
// verification; no credential is ever stored or checked locally.
type SessionManager struct {
	store  *sessions.CookieStore
	logger *zap.Logger
	name   string
}

// NewSessionManager creates a new SessionManager with the provided configuration.
//
// Parameters:
//   - sessionKey: signing key for cookies (must be ≥32 chars in production)
//   - name: session cookie name (defaults to "portfolio-session" if empty)
//   - domain: cookie domain (empty means current host)
//   - maxAge: session cookie lifetime (e.g., 24*time.Hour)
//   - secure: if true, cookies are Secure (for HTTPS production)
//   - logger: zap logger for session error logging
//
// Returns an error if sessionKey is empty or too weak for production mode.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, &SessionConfigError{Message: "session key is empty; provide ≥32 random chars"}
	}

	// Check for weak/default keys
	isWeak := len(sessionKey) < 32 || isDefaultKey(sessionKey)

	if secure {
		// In production mode, require a strong key - fail startup if weak
		if isWeak {
			return nil, &SessionConfigError{
				Message: "session key is too weak for production; provide ≥32 random chars (not the default dev key)",
			}
		}
	} else if isWeak {
		// In dev mode, warn but allow weak keys
		logger.Warn("session key is weak; 32+ random chars required in production",
			zap.Int("length", len(sessionKey)),
			zap.Bool("is_default", isDefaultKey(sessionKey)))
	}

	if name == "" {
		name = "portfolio-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}

	// SameSite=Lax is the recommended setting for first-party session cookies.
	// It allows cookies on same-site requests and top-level navigations while
	// blocking cross-site POST requests.
	opts.SameSite = http.SameSiteLaxMode

	store.Options = opts

	logger.Info("session manager initialized",
		zap.Bool("secure", secure),
		zap.String("name", name),
		zap.String("domain", domain))

	return &SessionManager{
		store:  store,
		logger: logger,
		name:   name,
	}, nil
}

// SessionConfigError is returned when session configuration is invalid.
type SessionConfigError struct {
	Message string
}

func (e *SessionConfigError) Error() string {
	return e.Message
}

// SessionName returns the configured session cookie name.
func (sm *SessionManager) SessionName() string {
	return sm.name
}

// Store returns the underlying session store.
func (sm *SessionManager) Store() *sessions.CookieStore {
	return sm.store
}

// GetSession retrieves the session for the request.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser represents the authenticated console user in the request
// context. Identity and role come from the backend's OTP verification
// response; Token is the bearer credential attached to every mutating
// backend call.
type SessionUser struct {
	Name  string
	Email string
	Role  string
	Token string
}

// BearerToken returns the backend bearer token for this user's session.
func (u *SessionUser) BearerToken() string {
	return u.Token
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag from the request context.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// Token returns the current user's bearer token, or "" when signed out.
func Token(r *http.Request) string {
	if u, ok := CurrentUser(r); ok {
		return u.Token
	}
	return ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser returns middleware that injects the user into context if
// logged in. The session cookie is the sole source of truth; the backend
// re-checks the bearer token on every mutating call anyway.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			// Classify the session error for appropriate logging.
			errType, errCategory := classifySessionError(err)
			switch errType {
			case sessionErrExpired:
				sm.logger.Debug("session expired, starting fresh session",
					zap.String("category", errCategory),
					zap.String("path", r.URL.Path))
			case sessionErrTampered:
				sm.logger.Warn("session MAC validation failed (possible tampering)",
					zap.String("category", errCategory),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("user_agent", r.UserAgent()))
			case sessionErrCorrupted:
				sm.logger.Info("session decode failed, starting fresh session",
					zap.String("category", errCategory),
					zap.String("path", r.URL.Path))
			case sessionErrBackend:
				sm.logger.Error("session store error, starting fresh session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
			default:
				sm.logger.Warn("session error, starting fresh session",
					zap.Error(err),
					zap.String("category", errCategory),
					zap.String("path", r.URL.Path))
			}
		}

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				Name:  getString(sess, userNameKey),
				Email: getString(sess, userEmailKey),
				Role:  getString(sess, userRoleKey),
				Token: getString(sess, apiTokenKey),
			}
			if u.Token != "" {
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireConsole returns middleware guarding the admin console.
//
// Semantics: no session → redirect to the login page; a session whose role
// is outside the allowed set → redirect to the public site, not to login.
func (sm *SessionManager) RequireConsole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[normalize.Role(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)

			// 1) Not signed in → back to login
			if !ok {
				if wantsHTML(r) {
					http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// 2) Signed in but wrong role → public site, not login
			role := normalize.Role(u.Role)
			if _, has := set[role]; !has {
				if wantsHTML(r) {
					http.Redirect(w, r, "/", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a SessionUser into the request context for testing.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

// isDefaultKey checks if the session key appears to be a default/placeholder value.
func isDefaultKey(key string) bool {
	lower := strings.ToLower(key)
	patterns := []string{
		"dev-only",
		"change-me",
		"placeholder",
		"default",
		"example",
		"insecure",
		"test-key",
		"secret123",
		"password",
	}
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// classifySessionError categorizes a session/cookie error for appropriate logging.
func classifySessionError(err error) (sessionErrorType, string) {
	if err == nil {
		return sessionErrUnknown, "none"
	}

	errStr := strings.ToLower(err.Error())

	if scErr, ok := err.(securecookie.Error); ok {
		if !scErr.IsDecode() {
			return sessionErrBackend, "backend"
		}

		switch {
		case strings.Contains(errStr, "expired timestamp"):
			return sessionErrExpired, "expired"
		case strings.Contains(errStr, "mac") || strings.Contains(errStr, "hash"):
			return sessionErrTampered, "mac_invalid"
		case strings.Contains(errStr, "decrypt"):
			return sessionErrCorrupted, "decrypt_failed"
		case strings.Contains(errStr, "base64") || strings.Contains(errStr, "decode"):
			return sessionErrCorrupted, "decode_failed"
		default:
			return sessionErrCorrupted, "decode_other"
		}
	}

	return sessionErrBackend, "unknown"
}

/*─────────────────────────────────────────────────────────────────────────────*
| Session Management                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// CreateSession establishes a console session after the backend verified
// the OTP. The token is the backend-issued bearer credential.
func (sm *SessionManager) CreateSession(w http.ResponseWriter, r *http.Request, name, email, role, token string) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		// Create new session if can't get existing
		sess, _ = sm.store.New(r, sm.name)
	}

	sess.Values[isAuthKey] = true
	sess.Values[userNameKey] = name
	sess.Values[userEmailKey] = normalize.Email(email)
	sess.Values[userRoleKey] = normalize.Role(role)
	sess.Values[apiTokenKey] = token
	delete(sess.Values, pendingEmailKey)

	return sess.Save(r, w)
}

// SetPendingLogin records the email that passed the credential step, so the
// OTP step knows which account is being verified.
func (sm *SessionManager) SetPendingLogin(w http.ResponseWriter, r *http.Request, email string) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sess, _ = sm.store.New(r, sm.name)
	}
	sess.Values[pendingEmailKey] = normalize.Email(email)
	return sess.Save(r, w)
}

// PendingLogin returns the email awaiting OTP verification, if any.
func (sm *SessionManager) PendingLogin(r *http.Request) string {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return ""
	}
	return getString(sess, pendingEmailKey)
}

// ClearPendingLogin abandons the OTP step ("back to login").
func (sm *SessionManager) ClearPendingLogin(w http.ResponseWriter, r *http.Request) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}
	delete(sess.Values, pendingEmailKey)
	_ = sess.Save(r, w)
}

// DestroySession terminates the user's session.
func (sm *SessionManager) DestroySession(w http.ResponseWriter, r *http.Request) {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		return
	}

	sess.Values[isAuthKey] = false
	delete(sess.Values, userNameKey)
	delete(sess.Values, userEmailKey)
	delete(sess.Values, userRoleKey)
	delete(sess.Values, apiTokenKey)
	delete(sess.Values, pendingEmailKey)

	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
}
