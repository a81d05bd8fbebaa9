// Package navigation builds the report's page menu.
package navigation

import (
	"net/url"

	"github.com/dalemusser/gradstats/internal/app/catalog"
)

// ReportPrefix is where non-overview pages are mounted.
const ReportPrefix = "/report"

// Item is one entry of the page menu.
type Item struct {
	Key    string
	Title  string
	URL    string
	Active bool
}

// PageURL returns the URL of the page with the given key.
func PageURL(key string) string {
	if key == catalog.OverviewKey || key == "" {
		return "/"
	}
	return ReportPrefix + "/" + url.PathEscape(key)
}

// SelectionURL returns the URL showing label on page.
func SelectionURL(page, label string) string {
	u := PageURL(page)
	if label == "" {
		return u
	}
	return u + "?selection=" + url.QueryEscape(label)
}

// Menu returns one Item per catalog page, in catalog order, marking active.
func Menu(cat *catalog.Catalog, active string) []Item {
	if cat == nil {
		return nil
	}
	pages := cat.Pages()
	items := make([]Item, 0, len(pages))
	for _, p := range pages {
		items = append(items, Item{
			Key:    p.Key,
			Title:  p.Title,
			URL:    PageURL(p.Key),
			Active: p.Key == active,
		})
	}
	return items
}
