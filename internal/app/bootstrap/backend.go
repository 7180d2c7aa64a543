// internal/app/bootstrap/backend.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/system/api"
)

// ConnectDB builds the backend dependencies.
//
// WAFFLE calls this after configuration is loaded but before Startup.
// This app talks to a single REST backend rather than a database, so
// "connecting" just means constructing the shared API client. The client
// is lazy: no request is made until a page needs data, and the public
// pages fall back to default content when the backend is unreachable, so
// a down backend must not abort startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := api.New(appCfg.APIBaseURL, appCfg.APITimeout, logger)

	logger.Info("configured backend API client",
		zap.String("base_url", appCfg.APIBaseURL),
		zap.Duration("timeout", appCfg.APITimeout),
	)

	return Deps{API: client}, nil
}
