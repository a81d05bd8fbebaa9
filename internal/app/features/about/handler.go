// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	DataRoot string
}

type Handler struct {
	DataRoot string
	Log      *zap.Logger
}

func NewHandler(dataRoot string, logger *zap.Logger) *Handler {
	return &Handler{DataRoot: dataRoot, Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, "About this report", ""),
		DataRoot: h.DataRoot,
	}

	templates.Render(w, r, "about", data)
}
