// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives: the
// backend API endpoint, session cookie settings, and CSRF keys.
type AppConfig struct {
	// Backend API configuration. Every page in this app is rendered from
	// data served by the portfolio backend's REST API.
	APIBaseURL string
	APITimeout time.Duration

	// Session cookie configuration for the admin console
	SessionKey    string
	SessionName   string
	SessionDomain string
	SessionMaxAge time.Duration

	// CSRF token signing key
	CSRFKey string

	// Base URL of this site (used for absolute links)
	BaseURL string
}
