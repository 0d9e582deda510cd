package http

import (
	"embed"
	"net/http"
)

//go:embed web/index.html
var webFS embed.FS

// dashboardHandler serves the embedded single-page dashboard that renders
// tables and charts over the JSON API.
func dashboardHandler() http.HandlerFunc {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		panic(err) // embedded file, cannot fail at runtime
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
