package http

import (
	"net/http"
	"path/filepath"
	"strings"
)

// NewPagesHandler serves the storefront's static page tree from dir. HTML
// pages are served with no-store so the guard verdict is re-evaluated on
// every navigation instead of a cached page bypassing it.
func NewPagesHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(filepath.Ext(r.URL.Path), ".html") || r.URL.Path == "/" {
			w.Header().Set("Cache-Control", "no-store")
		}
		fs.ServeHTTP(w, r)
	})
}
