// Package frontend serves the embedded single page application and the
// runtime configuration it reads on startup.
package frontend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mep-tools/bracket-tool/internal/logger"
)

const indexFile = "index.html"

// Handler is the root handler of the frontend listener.
//
// Unknown paths without a file extension fall back to index.html so that
// client side routes survive a page reload.
type Handler struct {
	// assets holds the built SPA, rooted at the site root.
	assets fs.FS

	// publicAPIBase is exposed to the browser as window.PUBLIC_API_BASE.
	publicAPIBase string

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over assets.
func NewHandler(assets fs.FS, publicAPIBase string, logger *logger.Logger) *Handler {
	logger.Debug().Str("public_api_base", publicAPIBase).Msg("frontend handler created")
	return &Handler{
		assets:        assets,
		publicAPIBase: publicAPIBase,
		logger:        logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	router.Get("/config.js", h.configJS)
	router.Get("/*", h.static)

	return router
}

func (h *Handler) configJS(w http.ResponseWriter, r *http.Request) {
	base, err := json.Marshal(h.publicAPIBase)
	if err != nil {
		h.logger.Err(err).Msg("error encoding public api base")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	fmt.Fprintf(w, "window.PUBLIC_API_BASE = %s;\n", base)
}

func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = indexFile
	}

	if _, err := fs.Stat(h.assets, name); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || path.Ext(name) != "" {
			http.NotFound(w, r)
			return
		}
		name = indexFile
	}

	http.ServeFileFS(w, r, h.assets, name)
}
