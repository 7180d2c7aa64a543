// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is invoked during WAFFLE's shutdown phase, after the HTTP
// server has stopped accepting new requests and existing requests have
// been drained (or the shutdown timeout has elapsed).
//
// The only resource this app holds is the backend API client's
// connection pool, so shutdown just releases those idle connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.API != nil {
		logger.Info("closing idle backend connections")
		deps.API.CloseIdleConnections()
	}
	return nil
}
