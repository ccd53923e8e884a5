// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/brightharbor/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// SchoolHub applies any timeout overrides from the environment and
// makes sure the upload directory exists.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.ConfigureFromEnv()

	if err := os.MkdirAll(appCfg.UploadDir, 0o755); err != nil {
		logger.Error("creating upload directory failed",
			zap.String("dir", appCfg.UploadDir), zap.Error(err))
		return err
	}
	return nil
}
