package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager(
		"this-is-a-32-character-long-key!",
		"portfolio-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	return sm
}

func TestNewSessionManager(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name       string
		sessionKey string
		secure     bool
		wantErr    bool
	}{
		{
			name:       "valid key dev mode",
			sessionKey: "this-is-a-32-character-long-key!",
			secure:     false,
			wantErr:    false,
		},
		{
			name:       "valid key prod mode",
			sessionKey: "this-is-a-32-character-long-key!",
			secure:     true,
			wantErr:    false,
		},
		{
			name:       "empty key",
			sessionKey: "",
			secure:     false,
			wantErr:    true,
		},
		{
			name:       "weak key dev mode",
			sessionKey: "short",
			secure:     false,
			wantErr:    false, // Warning but allowed in dev
		},
		{
			name:       "weak key prod mode",
			sessionKey: "short",
			secure:     true,
			wantErr:    true, // Error in prod
		},
		{
			name:       "default key prod mode",
			sessionKey: "dev-only-session-key-not-for-production",
			secure:     true,
			wantErr:    true, // Default keys not allowed in prod
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSessionManager(tt.sessionKey, "", "", time.Hour, tt.secure, logger)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSessionManager() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireConsole_NoSessionRedirectsToLogin(t *testing.T) {
	sm := newTestManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run without a session")
	})
	guarded := sm.RequireConsole("admin", "moderator")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location = %q, want %q", loc, "/admin/login")
	}
}

func TestRequireConsole_WrongRoleRedirectsToPublicSite(t *testing.T) {
	sm := newTestManager(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for a disallowed role")
	})
	guarded := sm.RequireConsole("admin", "moderator")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Accept", "text/html")
	req = WithTestUser(req, &SessionUser{Name: "Visitor", Email: "user@example.com", Role: "user", Token: "tok"})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	// Wrong role goes to the public site, not back to login.
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
}

func TestRequireConsole_ModeratorAllowed(t *testing.T) {
	sm := newTestManager(t)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	guarded := sm.RequireConsole("admin", "moderator")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req = WithTestUser(req, &SessionUser{Name: "Mod", Email: "mod@example.com", Role: "moderator", Token: "tok"})
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	if !called {
		t.Error("moderator should be granted console access")
	}
}

func TestRequireConsole_NonHTMLClientGetsPlainUnauthorized(t *testing.T) {
	sm := newTestManager(t)

	guarded := sm.RequireConsole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("Location = %q, want no redirect", loc)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newTestManager(t)

	// Create the session and capture the cookie.
	req := httptest.NewRequest(http.MethodPost, "/admin/login/verify", nil)
	rec := httptest.NewRecorder()
	if err := sm.CreateSession(rec, req, "Kapil", "admin@example.com", "Admin", "bearer-token-1"); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("CreateSession() set no cookie")
	}

	// Replay the cookie through LoadSessionUser.
	var got *SessionUser
	loaded := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))
	req2 := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	loaded.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("no user loaded from session cookie")
	}
	if got.Role != "admin" {
		t.Errorf("Role = %q, want normalized %q", got.Role, "admin")
	}
	if got.Token != "bearer-token-1" {
		t.Errorf("Token = %q, want %q", got.Token, "bearer-token-1")
	}
}

func TestPendingLogin(t *testing.T) {
	sm := newTestManager(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	if err := sm.SetPendingLogin(rec, req, " Admin@Example.com "); err != nil {
		t.Fatalf("SetPendingLogin() error = %v", err)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	if got := sm.PendingLogin(req2); got != "admin@example.com" {
		t.Errorf("PendingLogin() = %q, want %q", got, "admin@example.com")
	}

	rec2 := httptest.NewRecorder()
	sm.ClearPendingLogin(rec2, req2)
	req3 := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	for _, c := range rec2.Result().Cookies() {
		req3.AddCookie(c)
	}
	if got := sm.PendingLogin(req3); got != "" {
		t.Errorf("PendingLogin() after clear = %q, want empty", got)
	}
}
