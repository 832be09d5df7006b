// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the (already inflated) request body, or a fixed
// JSON document for bodyless requests.
func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if len(body) == 0 {
			body = []byte(`{"status":"PASS","checks":[1,2,3]}`)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestGZip(t *testing.T) {
	large := strings.Repeat(`{"tier":1,"weight_kg":12.5}`, 500)

	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		requestBody    string
		wantGzipped    bool
		wantBody       string
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", wantGzipped: true, wantBody: `{"status":"PASS","checks":[1,2,3]}`},
		{name: "client does not accept gzip", wantBody: `{"status":"PASS","checks":[1,2,3]}`},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip;q=1.0, br", wantGzipped: true, wantBody: `{"status":"PASS","checks":[1,2,3]}`},
		{name: "gzipped request is inflated", gzipRequest: true, requestBody: "sheet", wantBody: "sheet"},
		{name: "gzipped request and response", acceptEncoding: "gzip", gzipRequest: true, requestBody: large, wantGzipped: true, wantBody: large},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = http.NoBody
			if tt.requestBody != "" {
				raw := []byte(tt.requestBody)
				if tt.gzipRequest {
					raw = gzipBytes(t, tt.requestBody)
				}
				body = bytes.NewReader(raw)
			}

			req := httptest.NewRequest(http.MethodPost, "/projects", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler(t)).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				assert.Equal(t, tt.wantBody, gunzip(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/library/import/rods", strings.NewReader("plain text"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid gzip data", decodeDetail(t, rec))
}

func TestGZip_LargeBodyShrinks(t *testing.T) {
	payload := strings.Repeat("tier 1 PASS ", 2000)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Less(t, rec.Body.Len(), len(payload)/10)
	assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(echoHandler(t))

	const n = 50
	bodies := make([][]byte, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			bodies[i] = rec.Body.Bytes()
		}()
	}
	wg.Wait()

	for _, body := range bodies {
		assert.Equal(t, `{"status":"PASS","checks":[1,2,3]}`, gunzip(t, body))
	}
}

func TestGZip_EmptyResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/projects", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_PDFPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentTypePDF)
		w.Header().Set("Content-Length", "8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("%PDF-1.3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/projects/p/pdf", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestGZip_WriteWithoutWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "implicit 200", gunzip(t, rec.Body.Bytes()))
}

func TestCompressWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &compressWriter{ResponseWriter: rec, zw: gzip.NewWriter(rec)}

	cw.WriteHeader(http.StatusCreated)
	cw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, cw.wroteHeader)
}

func TestGzipBody_CloseReturnsReaderOnce(t *testing.T) {
	body, err := newGzipBody(io.NopCloser(bytes.NewReader(gzipBytes(t, "rows"))))
	require.NoError(t, err)

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "rows", string(content))

	require.NoError(t, body.Close())
	assert.NoError(t, body.Close())
}
