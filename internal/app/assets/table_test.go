package assets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/gradstats/internal/app/assets"
)

func TestDefaultTable_Entries(t *testing.T) {
	table, err := assets.DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}

	for _, slug := range []string{
		"chi-squared_test",
		"university_salary_comparison",
		"employment_by_university",
		"university_by_degree_heatmap",
		"university_vs_degree_impact",
		"regression_analysis",
		"anova_analysis",
	} {
		if _, ok := table[slug]; !ok {
			t.Errorf("default table missing %q", slug)
		}
	}
}

func TestParseTable_RejectsDuplicateSlug(t *testing.T) {
	_, err := assets.ParseTable([]byte(`
exceptions:
  - label: Heatmap
    dir: a
  - label: heatmap
    dir: b
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestParseTable_RequiresLabel(t *testing.T) {
	_, err := assets.ParseTable([]byte("exceptions:\n  - dir: x\n"))
	if err == nil {
		t.Fatal("expected error for missing label")
	}
}

func TestParseTable_InvalidYAML(t *testing.T) {
	if _, err := assets.ParseTable([]byte("exceptions: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadTable_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exceptions.yaml")
	content := "exceptions:\n  - label: Box plot\n    dir: boxplots\n    image: box.png\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := assets.LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	r := assets.NewResolver("root", table)
	got := r.Resolve("Box plot")
	if got.ImagePath != filepath.Join("root", "boxplots", "box.png") {
		t.Errorf("ImagePath = %q", got.ImagePath)
	}
	if got.TextPath != filepath.Join("root", "boxplots", "box_plot_interpretation.txt") {
		t.Errorf("TextPath = %q", got.TextPath)
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	if _, err := assets.LoadTable(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseTable_ExtraImageRequiresFile(t *testing.T) {
	_, err := assets.ParseTable([]byte("exceptions:\n  - label: Box plot\n    extra_images:\n      - caption: no file\n"))
	if err == nil || !strings.Contains(err.Error(), "file is required") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}
