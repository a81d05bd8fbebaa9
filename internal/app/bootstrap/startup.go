// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/gradstats/internal/app/resources"
	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup registers shared templates and seeds the view-model defaults
// (site name and page menu) before the handler is built. It also starts the
// asset watcher when one is configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName, deps.Catalog)

	if deps.Watcher != nil {
		deps.Watcher.Start()
	}
	return nil
}
