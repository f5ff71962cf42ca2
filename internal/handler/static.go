package handler

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// Static serves the built frontend from dir. Paths that are not regular files
// fall back to index.html so client-side routes resolve; /api/ paths never do.
func Static(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			writeError(w, http.StatusNotFound, "not_found", "Not found")
			return
		}
		if isFile(root, path.Clean("/"+r.URL.Path)) {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}

func isFile(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	return err == nil && !st.IsDir()
}
