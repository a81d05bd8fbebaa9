// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/gradstats/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderNotFound shows a friendly "page not found" page with a 404 status.
// If msg is empty a generic message is used; if backURL is empty it is "/".
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "We couldn't find the page you were looking for."
	}
	render(w, r, http.StatusNotFound, "Page not found", msg, backURL)
}

// RenderServerError shows a friendly error page with a 500 status.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong while preparing this page."
	}
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, ""),
		Status:  status,
		Message: msg,
		BackURL: backURL,
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}
