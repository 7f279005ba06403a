package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

var (
	gzWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses JSON replies for
// clients that accept gzip. Attachment transfers and HEAD replies pass
// through untouched, their Content-Length is the object size.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflate(r.Body)
			if err != nil {
				utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !compressible(r) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		defer func() {
			// no body: a bare gzip footer would corrupt 204 and empty replies
			if !gw.wrote {
				zw.Reset(io.Discard)
			}
			_ = zw.Close()
			gzWriters.Put(zw)
		}()

		next.ServeHTTP(gw, r)
	})
}

func compressible(r *http.Request) bool {
	if r.Method == http.MethodHead || strings.HasPrefix(r.URL.Path, "/api/storage/") {
		return false
	}
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// inflate returns a body that reads through a pooled gzip reader and hands
// the reader back on Close.
func inflate(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzReaders.Put(zr)
		return nil, err
	}
	return &pooledBody{Reader: zr, zr: zr, orig: body}, nil
}

type pooledBody struct {
	io.Reader
	zr   *gzip.Reader
	orig io.Closer
	once sync.Once
}

func (b *pooledBody) Close() error {
	b.once.Do(func() {
		_ = b.zr.Close()
		gzReaders.Put(b.zr)
	})
	return b.orig.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw    *gzip.Writer
	wrote bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Del("Content-Length")
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.wrote = true
	return w.zw.Write(data)
}
