// internal/app/bootstrap/hooks.go
package bootstrap

import (
	"github.com/dalemusser/waffle/app"
)

// Hooks wires this app into the WAFFLE lifecycle.
// Each function is called in order by app.Run, from configuration
// loading through backend setup, one-time startup work, HTTP handler
// construction, and finally graceful shutdown.
//
// Only LoadConfig, ConnectDB, and BuildHandler are strictly required;
// the others are optional and may be nil if the app does not need them.
// This app has no schema to ensure (the backend owns all data), so
// EnsureSchema is omitted.
var Hooks = app.Hooks[AppConfig, Deps]{
	Name:           "portfolio-web", // used only for logging/diagnostics
	LoadConfig:     LoadConfig,      // load core + app config
	ValidateConfig: ValidateConfig,  // validate backend URL and key settings
	ConnectDB:      ConnectDB,       // construct the backend API client
	Startup:        Startup,         // load shared templates
	BuildHandler:   BuildHandler,    // build the HTTP router + middleware stack
	Shutdown:       Shutdown,        // release pooled backend connections
}
