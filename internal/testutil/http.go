// Package testutil provides utilities for testing handlers: request
// builders, a fake backend server, and template bootstrapping.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	Name  string
	Email string
	Role  string
	Token string
}

// AdminUser returns a TestUser with admin role.
func AdminUser() TestUser {
	return TestUser{
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
		Token: "test-bearer-token",
	}
}

// ModeratorUser returns a TestUser with moderator role.
func ModeratorUser() TestUser {
	return TestUser{
		Name:  "Test Moderator",
		Email: "moderator@test.com",
		Role:  "moderator",
		Token: "test-bearer-token",
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: user.Token,
	}
	return auth.WithTestUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithUser(req, user)
}

// NewFormRequest creates a POST request carrying form values, with the
// Content-Type header handlers expect from a browser form submit.
func NewFormRequest(target string, form map[string]string) *http.Request {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
