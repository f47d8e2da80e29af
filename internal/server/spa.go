package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// spaHandler serves the built client bundle. Requests for files that exist in
// the dist dir are served as-is; everything else falls back to index.html so
// client-side routing keeps working.
type spaHandler struct {
	distDir string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.distDir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.distDir, "index.html"))
		return
	}

	http.FileServer(http.Dir(h.distDir)).ServeHTTP(w, r)
}
