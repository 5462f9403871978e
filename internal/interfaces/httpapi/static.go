package httpapi

import (
	"net/http"
	"os"
	"strings"
)

// registerStaticRoutes serves the web UI from dir at "/" when dir exists.
func registerStaticRoutes(mux *http.ServeMux, dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}

	mux.Handle("GET /", http.FileServer(http.Dir(dir)))
}
