// internal/app/features/report/handler.go
package report

import (
	"net/http"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/pagestate"
	"go.uber.org/zap"
)

// DefaultDataURL is where the data root is served from.
const DefaultDataURL = "/data"

// Handler is the shared dependency container for the report pages.
type Handler struct {
	Catalog  *catalog.Catalog
	Resolver *assets.Resolver
	State    *pagestate.Manager // optional; nil disables remembering selections
	DataURL  string
	Log      *zap.Logger
}

// NewHandler constructs a new Handler.
func NewHandler(cat *catalog.Catalog, resolver *assets.Resolver, state *pagestate.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  cat,
		Resolver: resolver,
		State:    state,
		DataURL:  DefaultDataURL,
		Log:      logger,
	}
}

func (h *Handler) currentState(r *http.Request) pagestate.State {
	if h.State == nil {
		return pagestate.State{}
	}
	return h.State.Current(r)
}

func (h *Handler) remember(w http.ResponseWriter, r *http.Request, page string, sel assets.Selection) {
	if h.State == nil {
		return
	}
	h.State.Remember(w, r, page, string(sel))
}
