// internal/app/features/report/page.go
package report

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	uierrors "github.com/dalemusser/gradstats/internal/app/features/errors"
	"github.com/dalemusser/gradstats/internal/app/system/navigation"
	"github.com/dalemusser/gradstats/internal/app/system/richtext"
	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// lookupPage resolves the {page} URL parameter. It renders the 404 page and
// returns false for unknown keys.
func (h *Handler) lookupPage(w http.ResponseWriter, r *http.Request) (*catalog.Page, bool) {
	key := chi.URLParam(r, "page")
	p, ok := h.Catalog.Page(key)
	if !ok {
		h.Log.Debug("unknown report page", zap.String("page", key))
		uierrors.RenderNotFound(w, r, "There is no report page called \""+key+"\".", "/")
		return nil, false
	}
	return p, true
}

// ServePage renders a report page with its selector and the current figure.
// GET /report/{page}?selection=<label>
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPage(w, r)
	if !ok {
		return
	}
	if p.Key == catalog.OverviewKey {
		http.Redirect(w, r, navigation.PageURL(p.Key), http.StatusSeeOther)
		return
	}
	if len(p.Options) == 0 {
		h.remember(w, r, p.Key, "")
		templates.Render(w, r, "report_view", PageData{
			BaseVM:  viewdata.NewBaseVM(r, p.Title, p.Key),
			PageKey: p.Key,
			Intro:   richtext.Render(p.Intro, false),
		})
		return
	}

	requested := query.Get(r, "selection")
	sel := chooseSelection(p, requested, h.currentState(r))
	if requested != "" && string(sel) != requested {
		h.Log.Debug("selection not offered by page",
			zap.String("page", p.Key),
			zap.String("selection", requested))
	}

	data := PageData{
		BaseVM:   viewdata.NewBaseVM(r, p.Title, p.Key),
		PageKey:  p.Key,
		Intro:    richtext.Render(p.Intro, false),
		Widget:   p.Widget,
		PanelURL: navigation.PageURL(p.Key) + "/panel",
		Options:  buildOptions(p, sel),
		Selected: string(sel),
		Figure:   h.buildFigure(sel),
	}

	h.remember(w, r, p.Key, sel)
	templates.Render(w, r, "report_view", data)
}

// ServePanel renders only the figure panel, for in-place swaps when the
// selection changes.
// GET /report/{page}/panel?selection=<label>
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPage(w, r)
	if !ok {
		return
	}
	if len(p.Options) == 0 {
		http.Error(w, "page has no selections", http.StatusBadRequest)
		return
	}

	sel := chooseSelection(p, query.Get(r, "selection"), h.currentState(r))
	data := PanelData{
		PageKey: p.Key,
		Figure:  h.buildFigure(sel),
	}

	h.remember(w, r, p.Key, sel)
	w.Header().Set("HX-Push-Url", navigation.SelectionURL(p.Key, string(sel)))
	templates.RenderSnippet(w, "report_panel", data)
}

// ServeResolve returns the resolution of a selection as JSON.
// GET /report/{page}/resolve?selection=<label>
//
// Unlike the HTML pages, a label the page does not offer is a 400 rather
// than a silent fallback; an empty selection resolves the page default.
func (h *Handler) ServeResolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	key := chi.URLParam(r, "page")
	p, ok := h.Catalog.Page(key)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown page"})
		return
	}
	if len(p.Options) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page has no selections"})
		return
	}

	sel := assets.Selection(query.Get(r, "selection"))
	if sel == "" {
		sel = p.Default()
	}
	if !p.Has(sel) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "selection not offered by page"})
		return
	}

	res := h.Resolver.Resolve(sel)
	var extras []resolveExtra
	for _, x := range res.Extras {
		extras = append(extras, resolveExtra{
			Caption: x.Caption,
			Path:    x.Path,
			URL:     h.fileURL(res.Dir, x.File),
			Exists:  assets.ImageExists(x.Path),
		})
	}
	writeJSON(w, http.StatusOK, resolveResponse{
		Page:        p.Key,
		Selection:   string(sel),
		ImagePath:   res.ImagePath,
		TextPath:    res.TextPath,
		ImageURL:    h.imageURL(res),
		ImageExists: assets.ImageExists(res.ImagePath),
		TextExists:  assets.TextExists(res.TextPath),
		Verbatim:    res.Verbatim,
		ExtraImages: extras,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
