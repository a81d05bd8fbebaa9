// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Resolver   *assets.Resolver
	Exceptions assets.Table
	Labels     []assets.Selection
	Log        *zap.Logger
}

// NewHandler constructs a health Handler that audits labels under the data
// root. The exception table is reported so operators can confirm which one
// is loaded; a nil table means the default naming only.
func NewHandler(table assets.Table, root string, labels []assets.Selection, logger *zap.Logger) *Handler {
	return &Handler{
		Resolver:   assets.NewResolver(root, table),
		Exceptions: table,
		Labels:     labels,
		Log:        logger,
	}
}

var errNotDir = errors.New("not a directory")

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status        string         `json:"status"`
	DataRoot      string         `json:"data_root"`
	Message       string         `json:"message,omitempty"`
	Error         string         `json:"error,omitempty"`
	CatalogLabels int            `json:"catalog_labels"`
	Exceptions    int            `json:"exceptions"`
	MissingAssets []missingAsset `json:"missing_assets,omitempty"`
}

type missingAsset struct {
	Selection string `json:"selection"`
	Kind      string `json:"kind"`
	Path      string `json:"path"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "data_root":"data_analysis", "catalog_labels":15 }
//
// Missing assets do not fail the check; they are listed and the status is
// "degraded". When the data root itself is unreadable: 503 and
//
//	{ "status":"error", "message":"Data root unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	root := h.Resolver.Root()
	resp := healthResponse{
		Status:        "ok",
		DataRoot:      root,
		CatalogLabels: len(h.Labels),
		Exceptions:    len(h.Exceptions),
	}

	if err := checkDir(root); err != nil {
		h.Log.Error("health-check: data root unavailable", zap.String("data_root", root), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Data root unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	rep := assets.Audit(h.Resolver, h.Labels)
	if !rep.OK() {
		resp.Status = "degraded"
		for _, m := range rep.Missing {
			resp.MissingAssets = append(resp.MissingAssets, missingAsset{
				Selection: string(m.Label),
				Kind:      m.Kind,
				Path:      m.Path,
			})
		}
	}

	_ = json.NewEncoder(w).Encode(resp)
}

func checkDir(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: errNotDir}
	}
	return nil
}
