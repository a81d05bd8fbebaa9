// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/gradstats/internal/app/features/about"
	errorsfeature "github.com/dalemusser/gradstats/internal/app/features/errors"
	healthfeature "github.com/dalemusser/gradstats/internal/app/features/health"
	homefeature "github.com/dalemusser/gradstats/internal/app/features/home"
	reportfeature "github.com/dalemusser/gradstats/internal/app/features/report"
	"github.com/dalemusser/gradstats/internal/app/system/navigation"
	"github.com/dalemusser/gradstats/internal/app/system/pagestate"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the dashboard.
//
// WAFFLE calls this after config, ConnectDB, EnsureSchema and Startup have
// run, so the catalog and resolver in deps are ready to use.
//
// Routes:
//
//	/health              data root check and asset audit (JSON)
//	/static/*            CSS and other bundled assets
//	/data/*              report images, served from data_root
//	/                    overview
//	/about               data source notes
//	/report/{page}       one page of the report, with its widget
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	state, err := pagestate.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("page-state manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.Use(errLog.Recoverer)
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	healthHandler := healthfeature.NewHandler(deps.Table, deps.Resolver.Root(), deps.Catalog.Labels(), logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	reportHandler := reportfeature.NewHandler(deps.Catalog, deps.Resolver, state, logger)
	r.Handle(reportHandler.DataURL+"/*", fileserver.Handler(reportHandler.DataURL, deps.Resolver.Root()))

	homeHandler := homefeature.NewHandler(deps.Catalog, state, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(appCfg.DataRoot, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	r.Mount(navigation.ReportPrefix, reportfeature.Routes(reportHandler))

	return r, nil
}
