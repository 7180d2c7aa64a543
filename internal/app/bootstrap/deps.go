// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
)

// Deps holds backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: Startup, BuildHandler, and Shutdown. This app keeps no database
// of its own; everything it renders comes from the portfolio backend's
// REST API, so the only dependency is the shared API client.
type Deps struct {
	// API is the HTTP client for the portfolio backend. All stores share
	// this client and its connection pool.
	API *api.Client
}
