// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the page catalog and asset exception table and builds the
// resolver rooted at the configured data directory.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	cat, err := loadCatalog(appCfg.CatalogFile)
	if err != nil {
		logger.Error("catalog load failed", zap.String("file", appCfg.CatalogFile), zap.Error(err))
		return DBDeps{}, err
	}

	table, err := loadTable(appCfg.ExceptionsFile)
	if err != nil {
		logger.Error("exception table load failed", zap.String("file", appCfg.ExceptionsFile), zap.Error(err))
		return DBDeps{}, err
	}

	logger.Info("report tables loaded",
		zap.String("data_root", appCfg.DataRoot),
		zap.Int("pages", len(cat.Pages())),
		zap.Int("labels", len(cat.Labels())),
		zap.Int("exceptions", len(table)))

	deps := DBDeps{
		Catalog:  cat,
		Table:    table,
		Resolver: assets.NewResolver(appCfg.DataRoot, table),
	}
	if appCfg.AuditInterval > 0 {
		deps.Watcher = workers.NewAssetWatcher(deps.Resolver, cat.Labels(), logger, appCfg.AuditInterval)
	}
	return deps, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}

func loadTable(path string) (assets.Table, error) {
	if path == "" {
		return assets.DefaultTable()
	}
	return assets.LoadTable(path)
}

// EnsureSchema audits the data root against every catalog label. Missing
// assets are logged; with strict_assets they abort startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	var rep assets.Report
	if deps.Watcher != nil {
		rep = deps.Watcher.Check()
	} else {
		rep = assets.Audit(deps.Resolver, deps.Catalog.Labels())
		for _, m := range rep.Missing {
			logger.Warn("report asset missing",
				zap.String("selection", string(m.Label)),
				zap.String("kind", m.Kind),
				zap.String("path", m.Path))
		}
	}
	if rep.OK() {
		logger.Info("report assets verified", zap.Int("labels", rep.Checked))
		return nil
	}
	if appCfg.StrictAssets {
		return fmt.Errorf("%d report assets missing for %d selections under %s", len(rep.Missing), rep.Checked, deps.Resolver.Root())
	}
	return nil
}
