// internal/app/features/report/types.go
package report

import (
	"html/template"

	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
)

// Option is one entry of a page's dropdown or radio group.
type Option struct {
	Label    string
	Value    string
	Selected bool
	URL      string // non-JS fallback link
}

// Figure is the resolved chart and interpretation for the current selection.
type Figure struct {
	Label   string
	Caption string // "<Title> Visualisation"

	ImageFound bool
	ImageURL   string
	ImageFile  string // shown in the "not found" notice

	// Extras are extra plots (ANOVA's per-factor plots). When present the
	// main image is only shown if it exists.
	Extras []ExtraFigure

	Interpretation template.HTML
	TextFound      bool
	Verbatim       bool
}

// ExtraFigure is one additional plot of a Figure.
type ExtraFigure struct {
	Caption string
	Found   bool
	URL     string
	File    string
}

// PageData is the view model for report_view.
type PageData struct {
	viewdata.BaseVM

	PageKey  string
	Intro    template.HTML
	Widget   string
	PanelURL string
	Options  []Option
	Selected string
	Figure   Figure
}

// PanelData is the view model for the report_panel snippet.
type PanelData struct {
	PageKey string
	Figure  Figure
}

// resolveResponse is the JSON form of a resolution.
type resolveResponse struct {
	Page        string `json:"page"`
	Selection   string `json:"selection"`
	ImagePath   string `json:"image_path"`
	TextPath    string `json:"text_path"`
	ImageURL    string `json:"image_url"`
	ImageExists bool   `json:"image_exists"`
	TextExists  bool   `json:"text_exists"`
	Verbatim    bool   `json:"verbatim"`

	ExtraImages []resolveExtra `json:"extra_images,omitempty"`
}

type resolveExtra struct {
	Caption string `json:"caption"`
	Path    string `json:"path"`
	URL     string `json:"url"`
	Exists  bool   `json:"exists"`
}

type errorResponse struct {
	Error string `json:"error"`
}
