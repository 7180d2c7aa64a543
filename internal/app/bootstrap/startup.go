// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/kapilraj10/portfolio-web/internal/app/resources"
)

// Startup runs once after ConnectDB completes, but before the HTTP
// handler is built and requests are served.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	logger.Info("portfolio web starting",
		zap.String("env", coreCfg.Env),
		zap.String("base_url", appCfg.BaseURL),
	)

	return nil
}
