package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// APIPrefix is the path the reverse proxy forwards to the API. Every route
// is served both with and without it.
const APIPrefix = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(h.routes)
	router.Route(APIPrefix, h.routes)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) routes(router chi.Router) {
	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Get("/docs", h.docs)
		r.Get("/openapi.yaml", h.openAPI)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// the pdf download is opened in a new browser tab, so the token may
	// arrive as a query parameter
	router.With(h.authWithQueryToken).Get("/projects/{projectID}/pdf", h.projectPDF)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/library/import/{kind}", h.importLibrary)
		r.Get("/library/{kind}", h.listLibrary)
		r.Get("/library/{kind}/{itemID}", h.getLibraryItem)

		r.Post("/projects", h.createProject)
		r.Get("/projects", h.listProjects)
		r.Get("/projects/{projectID}", h.getProject)
		r.Put("/projects/{projectID}", h.updateProject)
		r.Post("/projects/{projectID}/check", h.checkProject)

		r.Get("/projects/{projectID}/revisions", h.listRevisions)
		r.Get("/projects/{projectID}/revisions/{code}", h.getRevision)
		r.Get("/projects/{projectID}/revisions/{code}/pdf", h.revisionPDF)
	})
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition", traceIDHeader, revisionCodeHeader, pdfSHA256Header},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
