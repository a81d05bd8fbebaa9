// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// devSessionKey is the built-in signing key. It is rejected in prod.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_root, session_name, etc.
//   - Environment variables: GRADSTATS_DATA_ROOT, GRADSTATS_SESSION_NAME, etc.
//   - Command-line flags: --data_root, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_root", Default: "data_analysis", Desc: "Directory containing the exported report assets"},
	{Name: "exceptions_file", Default: "", Desc: "YAML file overriding the built-in asset exception table"},
	{Name: "catalog_file", Default: "", Desc: "YAML file overriding the built-in page catalog"},
	{Name: "strict_assets", Default: false, Desc: "Fail startup if any catalog asset is missing"},
	{Name: "audit_interval", Default: "5m", Desc: "How often to re-check report assets (e.g., 5m, 1h; 0 disables)"},
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the header"},

	{Name: "session_key", Default: devSessionKey, Desc: "Page-state cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "gradstats-page", Desc: "Page-state cookie name"},
	{Name: "session_domain", Default: "", Desc: "Page-state cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// GRADSTATS_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GRADSTATS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataRoot:       strings.TrimSpace(appValues.String("data_root")),
		ExceptionsFile: strings.TrimSpace(appValues.String("exceptions_file")),
		CatalogFile:    strings.TrimSpace(appValues.String("catalog_file")),
		StrictAssets:   appValues.Bool("strict_assets"),
		AuditInterval:  appValues.Duration("audit_interval", 5*time.Minute),
		SiteName:       appValues.String("site_name"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The data root must be set. In prod the built-in session key is refused so
// a deployment cannot silently ship with a published signing secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DataRoot == "" {
		return errors.New("data_root must not be empty")
	}
	if appCfg.SessionName == "" {
		return errors.New("session_name must not be empty")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		logger.Error("refusing to start with the development session key in prod")
		return fmt.Errorf("session_key: the development default is not allowed when env=%s", coreCfg.Env)
	}
	if appCfg.AuditInterval < 0 {
		return fmt.Errorf("audit_interval must not be negative (got %s)", appCfg.AuditInterval)
	}
	return nil
}
