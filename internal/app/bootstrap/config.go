// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "PORTFOLIO"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: PORTFOLIO_API_BASE_URL, PORTFOLIO_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:5000", Desc: "Base URL of the portfolio backend API"},
	{Name: "api_timeout", Default: "10s", Desc: "Per-request timeout for backend API calls"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "portfolio_session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	{Name: "base_url", Default: "http://localhost:8080", Desc: "Public base URL of this site"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PORTFOLIO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),
		APITimeout: appValues.Duration("api_timeout", 10*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		logger.Error("invalid backend API base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("invalid backend API base URL: %q", appCfg.APIBaseURL)
	}

	if coreCfg.Env == "prod" {
		if appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
			return fmt.Errorf("session_key must be changed from the dev default in production")
		}
		if appCfg.CSRFKey == "dev-only-csrf-key-please-change-0123456789" {
			return fmt.Errorf("csrf_key must be changed from the dev default in production")
		}
	}

	return nil
}
