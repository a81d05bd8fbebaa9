package testutil

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// PNG is a minimal valid PNG header; handlers only check existence, never decode.
var PNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Fixtures builds a throwaway data root laid out like the exported report.
type Fixtures struct {
	root string
	t    *testing.T
}

// NewFixtures creates an empty data root under t.TempDir().
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{root: t.TempDir(), t: t}
}

// Root returns the data root directory.
func (f *Fixtures) Root() string {
	return f.root
}

// WriteFile writes content to root/dir/name, creating dir as needed.
// Returns the full path.
func (f *Fixtures) WriteFile(dir, name string, content []byte) string {
	f.t.Helper()

	full := filepath.Join(f.root, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", full, err)
	}
	path := filepath.Join(full, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		f.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteImage writes a placeholder PNG at root/dir/name.
func (f *Fixtures) WriteImage(dir, name string) string {
	f.t.Helper()
	return f.WriteFile(dir, name, PNG)
}

// WriteText writes an interpretation text at root/dir/name.
func (f *Fixtures) WriteText(dir, name, text string) string {
	f.t.Helper()
	return f.WriteFile(dir, name, []byte(text))
}

// WriteCategory writes both default-named assets for slug:
// slug/slug.png and slug/slug_interpretation.txt.
func (f *Fixtures) WriteCategory(slug, text string) {
	f.t.Helper()
	f.WriteImage(slug, slug+".png")
	f.WriteText(slug, slug+"_interpretation.txt", text)
}
