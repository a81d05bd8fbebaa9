// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/workers"
)

// DBDeps holds the back-end dependencies built once at startup. The
// dashboard has no database; its "backend" is the exported report on disk
// and the tables that describe it.
type DBDeps struct {
	Catalog  *catalog.Catalog
	Table    assets.Table
	Resolver *assets.Resolver
	Watcher  *workers.AssetWatcher // nil when audit_interval is 0
}
