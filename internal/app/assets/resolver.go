// Package assets maps report selections to the pre-generated chart images and
// interpretation texts stored under the data root.
//
// Every category lives in its own directory named after its slug:
//
//	data_analysis/
//	    bar_chart/
//	        bar_chart.png
//	        bar_chart_interpretation.txt
//
// A handful of categories do not follow that layout. They are listed in an
// explicit exception table (see table.go) rather than derived from a rule.
package assets

import (
	"path/filepath"
	"strings"
)

// Selection is a human-readable category label offered by the dashboard.
type Selection string

// Resolution is the on-disk location of a selection's image and interpretation.
type Resolution struct {
	Selection Selection
	Slug      string

	Dir       string // directory under the data root
	ImageFile string
	TextFile  string

	ImagePath string // root/Dir/ImageFile
	TextPath  string // root/Dir/TextFile

	// Verbatim means the interpretation must be shown as preformatted text.
	Verbatim bool

	// Extras are additional figures in Dir. When present the main image
	// may be absent.
	Extras []Extra
}

// Extra is a resolved additional figure.
type Extra struct {
	File    string
	Caption string
	Rel     string // Dir/File, slash-separated
	Path    string // root/Dir/File
}

// ImageRel returns the image location relative to the data root, using
// forward slashes so it can be appended to a URL prefix.
func (res Resolution) ImageRel() string {
	return res.Dir + "/" + res.ImageFile
}

// Slug normalizes a selection label: lower-case, spaces replaced by underscores.
// Hyphens and other punctuation are kept as-is.
func Slug(sel Selection) string {
	return strings.ReplaceAll(strings.ToLower(string(sel)), " ", "_")
}

// Resolver turns selections into asset paths. It holds no mutable state and
// is safe for concurrent use.
type Resolver struct {
	root  string
	table Table
}

// NewResolver returns a Resolver rooted at root using the given exception table.
// A nil table means every selection uses the default naming.
func NewResolver(root string, table Table) *Resolver {
	if table == nil {
		table = Table{}
	}
	return &Resolver{root: root, table: table}
}

// Root returns the data root the resolver composes paths under.
func (r *Resolver) Root() string { return r.root }

// Resolve maps a selection to its image and interpretation paths. It never
// fails and never touches the filesystem.
func (r *Resolver) Resolve(sel Selection) Resolution {
	slug := Slug(sel)

	res := Resolution{
		Selection: sel,
		Slug:      slug,
		Dir:       slug,
		ImageFile: slug + ".png",
		TextFile:  slug + "_interpretation.txt",
	}

	if ex, ok := r.table[slug]; ok {
		if ex.Dir != "" {
			res.Dir = ex.Dir
		}
		if ex.Image != "" {
			res.ImageFile = ex.Image
		}
		if ex.Text != "" {
			res.TextFile = ex.Text
		}
		res.Verbatim = ex.Verbatim
		for _, x := range ex.ExtraImages {
			res.Extras = append(res.Extras, Extra{
				File:    x.File,
				Caption: x.Caption,
				Rel:     res.Dir + "/" + x.File,
				Path:    filepath.Join(r.root, res.Dir, x.File),
			})
		}
	}

	res.ImagePath = filepath.Join(r.root, res.Dir, res.ImageFile)
	res.TextPath = filepath.Join(r.root, res.Dir, res.TextFile)
	return res
}
