// Package catalog holds the fixed list of report pages and the categories
// each page lets the visitor choose from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"gopkg.in/yaml.v3"
)

// Widget kinds a page can use to present its options.
const (
	WidgetNone     = ""
	WidgetDropdown = "dropdown"
	WidgetRadio    = "radio"
)

// OverviewKey is the key of the landing page.
const OverviewKey = "overview"

// Page is one navigable section of the report.
type Page struct {
	Key     string             `yaml:"key" json:"key"`
	Title   string             `yaml:"title" json:"title"`
	Widget  string             `yaml:"widget,omitempty" json:"widget,omitempty"`
	Intro   string             `yaml:"intro,omitempty" json:"-"`
	Options []assets.Selection `yaml:"options,omitempty" json:"options,omitempty"`
}

// Has reports whether label is one of the page's options.
func (p *Page) Has(label assets.Selection) bool {
	for _, o := range p.Options {
		if o == label {
			return true
		}
	}
	return false
}

// Default returns the option preselected when the visitor has not chosen one.
func (p *Page) Default() assets.Selection {
	if len(p.Options) == 0 {
		return ""
	}
	return p.Options[0]
}

// Catalog is the ordered set of pages. It is read-only after Parse.
type Catalog struct {
	pages []Page
	byKey map[string]int
}

type catalogFile struct {
	Pages []Page `yaml:"pages"`
}

//go:embed catalog.yaml
var defaultYAML []byte

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
	defaultErr     error
)

// Load returns the catalog shipped with the binary, parsed once.
func Load() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultYAML)
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Pages) == 0 {
		return nil, fmt.Errorf("catalog has no pages")
	}

	c := &Catalog{
		pages: f.Pages,
		byKey: make(map[string]int, len(f.Pages)),
	}
	for i := range c.pages {
		p := &c.pages[i]
		if err := validatePage(p); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, fmt.Errorf("page %q: duplicate key", p.Key)
		}
		c.byKey[p.Key] = i
	}
	return c, nil
}

func validatePage(p *Page) error {
	if p.Key == "" {
		return fmt.Errorf("page %q: key is required", p.Title)
	}
	if p.Title == "" {
		p.Title = p.Key
	}

	switch p.Widget {
	case WidgetNone:
		if len(p.Options) > 0 {
			return fmt.Errorf("page %q: options require a widget", p.Key)
		}
		return nil
	case WidgetDropdown, WidgetRadio:
	default:
		return fmt.Errorf("page %q: unknown widget %q", p.Key, p.Widget)
	}

	if len(p.Options) == 0 {
		return fmt.Errorf("page %q: %s widget has no options", p.Key, p.Widget)
	}
	seen := make(map[assets.Selection]bool, len(p.Options))
	for _, o := range p.Options {
		if o == "" {
			return fmt.Errorf("page %q: empty option", p.Key)
		}
		if seen[o] {
			return fmt.Errorf("page %q: duplicate option %q", p.Key, o)
		}
		seen[o] = true
	}
	return nil
}

// Pages returns the pages in display order.
func (c *Catalog) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// Page looks up a page by key.
func (c *Catalog) Page(key string) (*Page, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	p := c.pages[i]
	return &p, true
}

// Labels returns every selectable label across all pages, in page order,
// without duplicates.
func (c *Catalog) Labels() []assets.Selection {
	var out []assets.Selection
	seen := map[assets.Selection]bool{}
	for _, p := range c.pages {
		for _, o := range p.Options {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}
