// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/mep-tools/bracket-tool/internal/utils"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				utils.WriteDetail(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !hasToken(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		defer gzipWriters.Put(zw)

		cw := &compressWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(cw, r)
		cw.Close()
	})
}

func hasToken(header, token string) bool {
	return strings.Contains(header, token)
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}
	b.Reader.Close()
	gzipReaders.Put(b.Reader)
	b.Reader = nil
	return b.src.Close()
}

// compressWriter gzips the body unless the status carries no body or the
// content is already compressed, as PDF reports are.
type compressWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	passthrough bool
}

func (w *compressWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status == http.StatusNoContent || status == http.StatusNotModified ||
		isPrecompressed(w.Header().Get("Content-Type")) {
		w.passthrough = true
	} else {
		h := w.Header()
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		h.Add("Vary", "Accept-Encoding")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *compressWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(p)
	}
	return w.zw.Write(p)
}

// Close flushes the gzip stream. Nothing is written when the handler sent
// no header at all.
func (w *compressWriter) Close() error {
	if !w.wroteHeader || w.passthrough {
		return nil
	}
	return w.zw.Close()
}

func isPrecompressed(contentType string) bool {
	for _, prefix := range []string{"application/pdf", "application/zip", "image/"} {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}
