// internal/app/assets/table.go
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Exception overrides the default naming for one category. Empty fields keep
// the default (slug, slug.png, slug_interpretation.txt).
type Exception struct {
	Label    string `yaml:"label"`
	Dir      string `yaml:"dir,omitempty"`
	Image    string `yaml:"image,omitempty"`
	Text     string `yaml:"text,omitempty"`
	Verbatim bool   `yaml:"verbatim,omitempty"`

	// ExtraImages are shown alongside (or instead of) the main image, in
	// order. When set, the main image is optional.
	ExtraImages []ExtraImage `yaml:"extra_images,omitempty"`
}

// ExtraImage is an additional figure file in the category directory.
type ExtraImage struct {
	File    string `yaml:"file"`
	Caption string `yaml:"caption,omitempty"`
}

// Table maps a slug to its naming exception.
type Table map[string]Exception

type tableFile struct {
	Exceptions []Exception `yaml:"exceptions"`
}

//go:embed exceptions.yaml
var defaultTableYAML []byte

var (
	defaultTable     Table
	defaultTableOnce sync.Once
	defaultTableErr  error
)

// DefaultTable returns the exception table shipped with the binary. It is
// parsed once and cached for the lifetime of the process.
func DefaultTable() (Table, error) {
	defaultTableOnce.Do(func() {
		defaultTable, defaultTableErr = ParseTable(defaultTableYAML)
	})
	return defaultTable, defaultTableErr
}

// LoadTable reads an exception table from a YAML file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exceptions file: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable decodes the YAML form of the table:
//
//	exceptions:
//	  - label: Chi-Squared test
//	    image: chi-squared_test_plot.png
//
// Entries are keyed by the slug of their label. Duplicate slugs are rejected.
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse exceptions: %w", err)
	}

	t := make(Table, len(f.Exceptions))
	for i, ex := range f.Exceptions {
		if ex.Label == "" {
			return nil, fmt.Errorf("exception %d: label is required", i)
		}
		for j, x := range ex.ExtraImages {
			if x.File == "" {
				return nil, fmt.Errorf("exception %q: extra image %d: file is required", ex.Label, j)
			}
		}
		slug := Slug(Selection(ex.Label))
		if _, dup := t[slug]; dup {
			return nil, fmt.Errorf("exception %q: duplicate slug %q", ex.Label, slug)
		}
		t[slug] = ex
	}
	return t, nil
}
