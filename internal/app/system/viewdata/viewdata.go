// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/dalemusser/gradstats/internal/app/system/navigation"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until Init is called.
const DefaultSiteName = "Graduate Employment Statistics"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "visualizations"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	CurrentPath string
	CurrentPage string // catalog page key, "" for pages outside the report

	// Page menu built from the catalog
	Menu []navigation.Item
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
	pages    *catalog.Catalog
)

// Init sets the site name and the catalog the menu is built from.
// Call this once at startup from bootstrap.
func Init(name string, cat *catalog.Catalog) {
	mu.Lock()
	defer mu.Unlock()
	if name != "" {
		siteName = name
	}
	pages = cat
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - currentPage: catalog key of the page being shown, highlighted in the menu
func NewBaseVM(r *http.Request, title, currentPage string) BaseVM {
	mu.RLock()
	name, cat := siteName, pages
	mu.RUnlock()

	return BaseVM{
		SiteName:    name,
		Title:       title,
		CurrentPath: httpnav.CurrentPath(r),
		CurrentPage: currentPage,
		Menu:        navigation.Menu(cat, currentPage),
	}
}
