package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AssetServer serves files from assets under the given route prefix.
// example usage:
//
//	r.Get("/static/*", AssetServer(views.Static(), "/static/", log))
func AssetServer(assets fs.FS, prefix string, log *zap.Logger) http.HandlerFunc {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.FS(assets)))

	return func(w http.ResponseWriter, r *http.Request) {
		relativePath := strings.TrimPrefix(r.URL.Path, prefix)

		if relativePath == "" || strings.HasSuffix(relativePath, "/") || strings.Contains(relativePath, "..") {
			http.NotFound(w, r)
			return
		}

		if _, err := fs.Stat(assets, path.Clean(relativePath)); errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			log.Error("error stating asset", zap.String("path", relativePath), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		cacheDuration := 24 * time.Hour
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheDuration.Seconds())))
		w.Header().Set("Expires", time.Now().Add(cacheDuration).Format(http.TimeFormat))

		fileServer.ServeHTTP(w, r)
	}
}
