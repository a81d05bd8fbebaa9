// internal/app/features/report/figure.go
package report

import (
	"net/url"
	"strings"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/navigation"
	"github.com/dalemusser/gradstats/internal/app/system/pagestate"
	"github.com/dalemusser/gradstats/internal/app/system/richtext"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// chooseSelection picks what to show on page: the requested label when the
// page offers it, otherwise the visitor's remembered choice, otherwise the
// page default. Labels the page does not offer are never resolved.
func chooseSelection(p *catalog.Page, requested string, st pagestate.State) assets.Selection {
	if requested != "" && p.Has(assets.Selection(requested)) {
		return assets.Selection(requested)
	}
	if rem := st.Selection(p.Key); rem != "" && p.Has(assets.Selection(rem)) {
		return assets.Selection(rem)
	}
	return p.Default()
}

// imageURL maps a resolution to the URL the data root is served under.
func (h *Handler) imageURL(res assets.Resolution) string {
	return h.fileURL(res.Dir, res.ImageFile)
}

func (h *Handler) fileURL(dir, file string) string {
	base := strings.TrimRight(h.DataURL, "/")
	return base + "/" + url.PathEscape(dir) + "/" + url.PathEscape(file)
}

// caption titles the slug with spaces, so "Bar chart" becomes
// "Bar Chart Visualisation".
func caption(res assets.Resolution) string {
	return cases.Title(language.English).String(strings.ReplaceAll(res.Slug, "_", " ")) + " Visualisation"
}

// buildFigure resolves sel and loads what exists of its assets.
// Missing assets are reported in the figure, never as errors.
func (h *Handler) buildFigure(sel assets.Selection) Figure {
	res := h.Resolver.Resolve(sel)

	fig := Figure{
		Label:      string(sel),
		Caption:    caption(res),
		ImageFound: assets.ImageExists(res.ImagePath),
		ImageFile:  res.ImageRel(),
		Verbatim:   res.Verbatim,
	}

	for _, x := range res.Extras {
		ef := ExtraFigure{
			Caption: x.Caption,
			Found:   assets.ImageExists(x.Path),
			File:    x.Rel,
		}
		if ef.Found {
			ef.URL = h.fileURL(res.Dir, x.File)
		} else {
			h.Log.Warn("report image missing",
				zap.String("selection", string(sel)),
				zap.String("path", x.Path))
		}
		fig.Extras = append(fig.Extras, ef)
	}

	if fig.ImageFound {
		fig.ImageURL = h.imageURL(res)
	} else if len(fig.Extras) == 0 {
		h.Log.Warn("report image missing",
			zap.String("selection", string(sel)),
			zap.String("path", res.ImagePath))
	}

	text := assets.LoadText(res.TextPath)
	fig.TextFound = text != assets.InterpretationNotFound
	if !fig.TextFound {
		h.Log.Warn("report interpretation missing",
			zap.String("selection", string(sel)),
			zap.String("path", res.TextPath))
	}
	fig.Interpretation = richtext.Render(text, res.Verbatim)

	return fig
}

// buildOptions lists the page's options, marking sel.
func buildOptions(p *catalog.Page, sel assets.Selection) []Option {
	opts := make([]Option, 0, len(p.Options))
	for _, o := range p.Options {
		opts = append(opts, Option{
			Label:    string(o),
			Value:    string(o),
			Selected: o == sel,
			URL:      navigation.SelectionURL(p.Key, string(o)),
		})
	}
	return opts
}
