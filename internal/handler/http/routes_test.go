package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mep-tools/bracket-tool/internal/config"
	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/models"
)

func newRoutesHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandlerWithServices(t, &service.Services{
		AppInfoService: &mockAppInfoService{
			version: "1.2.3",
			health:  models.HealthStatus{OK: true, Version: "1.2.3", DB: "up"},
		},
		ProjectService: &mockProjectService{
			listFn: func(context.Context, int64) ([]models.ProjectListItem, error) {
				return []models.ProjectListItem{}, nil
			},
		},
	})
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	h := newRoutesHandler(t)

	tests := []struct {
		path            string
		wantContentType string
		wantBody        string
	}{
		{path: "/health", wantContentType: "application/json", wantBody: `"db":"up"`},
		{path: "/api/health", wantContentType: "application/json", wantBody: `"ok":true`},
		{path: "/version", wantContentType: "text/plain", wantBody: "1.2.3"},
		{path: "/docs", wantContentType: "text/html; charset=utf-8", wantBody: "swagger-ui"},
		{path: "/api/docs", wantContentType: "text/html; charset=utf-8", wantBody: `url: "openapi.yaml"`},
		{path: "/openapi.yaml", wantContentType: "application/yaml", wantBody: "openapi: 3.0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantContentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRoutes_HealthWithDatabaseDown(t *testing.T) {
	h := newTestHandlerWithServices(t, &service.Services{
		AppInfoService: &mockAppInfoService{health: models.HealthStatus{OK: true, Version: "1.2.3", DB: "down"}},
	})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"version":"1.2.3","db":"down"}`, rec.Body.String())
}

func TestRoutes_ProtectedEndpointsRejectAnonymous(t *testing.T) {
	h := newRoutesHandler(t)

	for _, path := range []string{
		"/projects",
		"/api/projects",
		"/library/rods",
		"/projects/" + testProjectID + "/revisions",
	} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRoutes_BothPrefixesReachSameHandler(t *testing.T) {
	h := newRoutesHandler(t)

	for _, path := range []string{"/projects", "/api/projects"} {
		rec := serve(h, authed(httptest.NewRequest(http.MethodGet, path, nil)))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	h := newRoutesHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET", rec.Header().Get("Allow"))
}

func TestRoutes_UnknownPath(t *testing.T) {
	h := newRoutesHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	svcs := &service.Services{AppInfoService: &mockAppInfoService{}, AuthService: validTokenAuth()}
	h := NewHandler(svcs, config.Server{CORSOrigins: []string{"http://localhost:3000"}}, logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := serve(h, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.True(t, rec.Code < 300, "preflight status %d", rec.Code)

	req = httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = serve(h, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_GzipJSON(t *testing.T) {
	h := newRoutesHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.False(t, strings.Contains(rec.Body.String(), `"ok"`))
}
