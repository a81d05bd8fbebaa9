package report

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/pagestate"
	"github.com/dalemusser/gradstats/internal/testutil"
	"go.uber.org/zap"
)

func testPage(t *testing.T, key string) *catalog.Page {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	p, ok := cat.Page(key)
	if !ok {
		t.Fatalf("page %q missing", key)
	}
	return p
}

func testHandler(t *testing.T, root string) *Handler {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	table, err := assets.DefaultTable()
	if err != nil {
		t.Fatal(err)
	}
	return NewHandler(cat, assets.NewResolver(root, table), nil, zap.NewNop())
}

func TestChooseSelection(t *testing.T) {
	p := testPage(t, "statistical-tests")
	remembered := pagestate.State{Selections: map[string]string{"statistical-tests": "Regression analysis"}}
	stale := pagestate.State{Selections: map[string]string{"statistical-tests": "Bar chart"}}

	tests := []struct {
		name      string
		requested string
		state     pagestate.State
		want      assets.Selection
	}{
		{"requested wins", "Chi-Squared test", remembered, "Chi-Squared test"},
		{"remembered when none requested", "", remembered, "Regression analysis"},
		{"remembered when requested not offered", "Pie chart", remembered, "Regression analysis"},
		{"default when nothing usable", "Pie chart", stale, "ANOVA Analysis"},
		{"default for empty state", "", pagestate.State{}, "ANOVA Analysis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseSelection(p, tt.requested, tt.state); got != tt.want {
				t.Errorf("chooseSelection = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFigure_Present(t *testing.T) {
	fx := testutil.NewFixtures(t)
	fx.WriteImage("chi-squared_test", "chi-squared_test_plot.png")
	fx.WriteText("chi-squared_test", "chi-squared_test_interpretation.txt", "Degree and employment are **not** independent.")

	h := testHandler(t, fx.Root())
	fig := h.buildFigure("Chi-Squared test")

	if !fig.ImageFound {
		t.Fatal("expected image to be found")
	}
	if fig.ImageURL != "/data/chi-squared_test/chi-squared_test_plot.png" {
		t.Errorf("ImageURL = %q", fig.ImageURL)
	}
	if !fig.TextFound {
		t.Error("expected interpretation to be found")
	}
	if !strings.Contains(string(fig.Interpretation), "<strong>not</strong>") {
		t.Errorf("expected markdown rendering, got %q", fig.Interpretation)
	}
	if fig.Verbatim {
		t.Error("chi-squared should not be verbatim")
	}
}

func TestBuildFigure_Missing(t *testing.T) {
	h := testHandler(t, testutil.NewFixtures(t).Root())
	fig := h.buildFigure("Heatmap")

	if fig.ImageFound || fig.ImageURL != "" {
		t.Errorf("expected missing image, got %+v", fig)
	}
	if fig.ImageFile != "heatmap/heatmap.png" {
		t.Errorf("ImageFile = %q", fig.ImageFile)
	}
	if fig.TextFound {
		t.Error("expected missing interpretation")
	}
	if !strings.Contains(string(fig.Interpretation), assets.InterpretationNotFound) {
		t.Errorf("expected sentinel text, got %q", fig.Interpretation)
	}
}

func TestBuildFigure_RegressionIsVerbatim(t *testing.T) {
	fx := testutil.NewFixtures(t)
	fx.WriteCategory("regression_analysis", "coef  *gpa*  <0.001>")

	h := testHandler(t, fx.Root())
	fig := h.buildFigure("Regression analysis")

	if !fig.Verbatim {
		t.Fatal("expected verbatim figure")
	}
	out := string(fig.Interpretation)
	if !strings.HasPrefix(out, "<pre") {
		t.Errorf("expected <pre>, got %q", out)
	}
	if !strings.Contains(out, "*gpa*") || !strings.Contains(out, "&lt;0.001&gt;") {
		t.Errorf("expected text kept literally, got %q", out)
	}
}

func TestBuildOptions_MarksSelected(t *testing.T) {
	p := testPage(t, "visualizations")
	opts := buildOptions(p, "Heatmap")

	if len(opts) != len(p.Options) {
		t.Fatalf("expected %d options, got %d", len(p.Options), len(opts))
	}
	selected := 0
	for _, o := range opts {
		if o.Selected {
			selected++
			if o.Label != "Heatmap" {
				t.Errorf("wrong option selected: %q", o.Label)
			}
			if o.URL != "/report/visualizations?selection=Heatmap" {
				t.Errorf("URL = %q", o.URL)
			}
		}
	}
	if selected != 1 {
		t.Errorf("expected one selected option, got %d", selected)
	}
}

func TestImageURL_CustomPrefix(t *testing.T) {
	h := testHandler(t, "root")
	h.DataURL = "/assets/"
	got := h.imageURL(h.Resolver.Resolve("University salary comparison"))
	if got != "/assets/bar_chart/university_salary_comparison.png" {
		t.Errorf("imageURL = %q", got)
	}
}

func TestBuildFigure_AnovaShowsBothPlots(t *testing.T) {
	fx := testutil.NewFixtures(t)
	fx.WriteImage("anova_analysis", "anova_plot_ERvsUNI.png")
	fx.WriteImage("anova_analysis", "anova_plot_ERvsDC.png")

	h := testHandler(t, fx.Root())
	fig := h.buildFigure("ANOVA Analysis")

	if len(fig.Extras) != 2 {
		t.Fatalf("expected 2 extra plots, got %d", len(fig.Extras))
	}
	want := []ExtraFigure{
		{Caption: "ANOVA: ER vs UNI", Found: true, URL: "/data/anova_analysis/anova_plot_ERvsUNI.png", File: "anova_analysis/anova_plot_ERvsUNI.png"},
		{Caption: "ANOVA: ER vs DC", Found: true, URL: "/data/anova_analysis/anova_plot_ERvsDC.png", File: "anova_analysis/anova_plot_ERvsDC.png"},
	}
	for i := range want {
		if fig.Extras[i] != want[i] {
			t.Errorf("Extras[%d] = %+v, want %+v", i, fig.Extras[i], want[i])
		}
	}
	if fig.ImageFound {
		t.Error("anova_analysis.png was not written; main image should be absent")
	}
}

func TestBuildFigure_AnovaMissingPlot(t *testing.T) {
	fx := testutil.NewFixtures(t)
	fx.WriteImage("anova_analysis", "anova_plot_ERvsUNI.png")

	fig := testHandler(t, fx.Root()).buildFigure("ANOVA Analysis")
	if !fig.Extras[0].Found || fig.Extras[1].Found {
		t.Errorf("found flags = %v/%v, want true/false", fig.Extras[0].Found, fig.Extras[1].Found)
	}
	if fig.Extras[1].URL != "" {
		t.Errorf("missing plot should have no URL, got %q", fig.Extras[1].URL)
	}
}

func TestCaption(t *testing.T) {
	h := testHandler(t, "root")
	tests := []struct {
		label assets.Selection
		want  string
	}{
		{"Bar chart", "Bar Chart Visualisation"},
		{"Stacked Bar Chart", "Stacked Bar Chart Visualisation"},
		{"ANOVA Analysis", "Anova Analysis Visualisation"},
		{"Regression analysis", "Regression Analysis Visualisation"},
	}
	for _, tt := range tests {
		if got := caption(h.Resolver.Resolve(tt.label)); got != tt.want {
			t.Errorf("caption(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestLookupPage(t *testing.T) {
	h := testHandler(t, "root")

	req := testutil.WithChiURLParam(testutil.NewHTMLRequest("/report/visualizations"), "page", "visualizations")
	p, ok := h.lookupPage(testutil.NewRecorder(), req)
	if !ok || p.Key != "visualizations" {
		t.Fatalf("lookupPage = %v, %v", p, ok)
	}

	rec := testutil.NewRecorder()
	req = testutil.WithChiURLParam(testutil.NewHTMLRequest("/report/nope"), "page", "nope")
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic without a booted engine
			}
		}()
		if _, ok := h.lookupPage(rec, req); ok {
			t.Error("unknown page should not be found")
		}
	}()
	rec.AssertStatus(t, http.StatusNotFound)
}
