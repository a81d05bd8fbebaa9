// internal/app/features/report/routes.go
package report

import "github.com/go-chi/chi/v5"

// Routes returns the router for the report pages, mounted under /report.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{page}", h.ServePage)
	r.Get("/{page}/panel", h.ServePanel)
	r.Get("/{page}/resolve", h.ServeResolve)
	return r
}
