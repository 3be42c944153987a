package services

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	goahttp "goa.design/goa/v3/http"

	"github.com/Brendon2203/techsolutions/internal/logging"
)

// SiteHandler serves the landing page and its static assets
type SiteHandler struct {
	dir string
}

// NewSiteHandler serves dir/index.html at / and dir/static under /static/
func NewSiteHandler(dir string) *SiteHandler {
	return &SiteHandler{dir: dir}
}

// Mount registers the site routes on mux
func (h *SiteHandler) Mount(mux goahttp.Muxer) {
	mux.Handle("GET", "/", h.ServeIndex)
	static := h.Static()
	mux.Handle("GET", "/static/{*filepath}", static.ServeHTTP)
}

// ServeIndex writes index.html. A missing or unreadable page is a 500.
func (h *SiteHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, "index.html")

	f, err := os.Open(path)
	if err != nil {
		logging.Error("failed to serve index.html", "component", "site", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		logging.Error("failed to serve index.html", "component", "site", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// Static serves files under dir/static without directory listings
func (h *SiteHandler) Static() http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Join(h.dir, "static"))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Status: status, Error: msg})
}
