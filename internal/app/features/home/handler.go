// internal/app/features/home/handler.go
package home

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/navigation"
	"github.com/dalemusser/gradstats/internal/app/system/pagestate"
	"github.com/dalemusser/gradstats/internal/app/system/richtext"
	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the overview page.
type Handler struct {
	Catalog *catalog.Catalog
	State   *pagestate.Manager // optional
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, state *pagestate.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		State:   state,
		Log:     logger,
	}
}

// Section links to one report page from the overview.
type Section struct {
	Title   string
	Summary template.HTML
	URL     string
	Count   int
}

// Continue points back at the page the visitor was on last.
type Continue struct {
	Title string
	URL   string
}

type pageData struct {
	viewdata.BaseVM
	Intro    template.HTML
	Sections []Section
	Continue *Continue
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – overview                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := h.buildPage(r)

	if h.State != nil {
		h.State.Remember(w, r, catalog.OverviewKey, "")
	}
	templates.Render(w, r, "home", data)
}

func (h *Handler) buildPage(r *http.Request) pageData {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "", catalog.OverviewKey),
	}

	if p, ok := h.Catalog.Page(catalog.OverviewKey); ok {
		data.Title = p.Title
		data.Intro = richtext.Render(p.Intro, false)
	}

	for _, p := range h.Catalog.Pages() {
		if p.Key == catalog.OverviewKey {
			continue
		}
		data.Sections = append(data.Sections, Section{
			Title:   p.Title,
			Summary: richtext.Render(p.Intro, false),
			URL:     navigation.PageURL(p.Key),
			Count:   len(p.Options),
		})
	}

	if h.State != nil {
		st := h.State.Current(r)
		if p, ok := h.Catalog.Page(st.Page); ok && p.Key != catalog.OverviewKey {
			data.Continue = &Continue{
				Title: p.Title,
				URL:   navigation.SelectionURL(p.Key, st.Selection(p.Key)),
			}
		}
	}

	return data
}
