// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for the dashboard.
//
// WAFFLE's CoreConfig covers ports, TLS, logging and timeouts. AppConfig
// carries what is specific to this app: where the exported report lives,
// optional overrides for the embedded catalog and exception table, and the
// cookie that remembers the last page and selection.
type AppConfig struct {
	// Exported report
	DataRoot       string // Directory holding one subdirectory per report category
	ExceptionsFile string // Optional YAML exception table; blank uses the embedded one
	CatalogFile    string // Optional YAML page catalog; blank uses the embedded one
	StrictAssets   bool   // Abort startup when any catalog asset is missing

	AuditInterval time.Duration // How often the asset watcher re-audits; 0 disables it

	SiteName string // Shown in the header and page titles

	// Page-state cookie
	SessionKey    string // Secret key for signing the cookie (must be strong in production)
	SessionName   string // Cookie name (default: gradstats-page)
	SessionDomain string // Cookie domain (blank means current host)
}
