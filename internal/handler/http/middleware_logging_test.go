package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel string
		wantSize  float64
	}{
		{name: "GET 200", method: http.MethodGet, path: "/projects", status: http.StatusOK, body: "[]", wantLevel: "info", wantSize: 2},
		{name: "POST 201", method: http.MethodPost, path: "/projects", status: http.StatusCreated, body: `{"id":"x"}`, wantLevel: "info", wantSize: 10},
		{name: "404 stays info", method: http.MethodGet, path: "/projects/x", status: http.StatusNotFound, wantLevel: "info"},
		{name: "500 is error", method: http.MethodGet, path: "/health", status: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, requestWithLogger(tt.method, tt.path, &buf))

			entry := decodeLogLine(t, &buf)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.path, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/version", &buf))

	assert.EqualValues(t, http.StatusOK, decodeLogLine(t, &buf)["status"])
}

func TestWithLogging_SizeAcrossWrites(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-"))
		_, _ = w.Write([]byte("1.3"))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/projects/p/pdf", &buf))

	assert.EqualValues(t, 8, decodeLogLine(t, &buf)["size"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))
	})
}
