// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
	"github.com/kapilraj10/portfolio-web/internal/app/system/normalize"
	"github.com/kapilraj10/portfolio-web/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity
	SiteName string
	Tagline  string

	// User context (from auth middleware)
	IsLoggedIn bool
	UserName   string
	UserEmail  string
	Role       string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

// IsAdmin reports whether the signed-in user has the admin role.
// Moderators see the console but not admin-only controls.
func (vm BaseVM) IsAdmin() bool {
	return vm.Role == models.RoleAdmin
}

// New creates a BaseVM populated from the request context.
// This is the standard way to create a BaseVM for most handlers.
func New(r *http.Request) BaseVM {
	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		Tagline:     models.DefaultTagline,
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}

	if user, ok := auth.CurrentUser(r); ok {
		vm.IsLoggedIn = true
		vm.UserName = user.Name
		vm.UserEmail = user.Email
		vm.Role = normalize.Role(user.Role)
	}

	return vm
}

// NewBaseVM creates a BaseVM with the title and back URL resolved.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}
