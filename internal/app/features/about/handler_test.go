package about_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/gradstats/internal/app/features/about"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	h := about.NewHandler("data_analysis", zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.DataRoot != "data_analysis" {
		t.Errorf("DataRoot = %q", h.DataRoot)
	}
}

func TestServeAbout_DoesNotPanicBeforeRender(t *testing.T) {
	h := about.NewHandler("data_analysis", zap.NewNop())

	req := httptest.NewRequest("GET", "/about", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		h.ServeAbout(rec, req)
	}()
}
