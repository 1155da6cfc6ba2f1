package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Compressor state is pooled; the API moves many small JSON bodies and a
// fresh gzip writer per request costs more than the payloads themselves.
var (
	compressorPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	decompressorPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise Accept-Encoding: gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			if !decompressRequestBody(w, r) {
				return
			}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		compressor := compressorPool.Get().(*gzip.Writer)
		compressor.Reset(w)

		next.ServeHTTP(&compressingResponseWriter{ResponseWriter: w, compressor: compressor}, r)

		compressor.Close()
		compressorPool.Put(compressor)
	})
}

// decompressRequestBody swaps the request body for a pooled gzip reader and
// strips the Content-Encoding header so handlers see a plain body. Returns
// false after responding 400 when the body is not valid gzip.
func decompressRequestBody(w http.ResponseWriter, r *http.Request) bool {
	decompressor := decompressorPool.Get().(*gzip.Reader)
	if err := decompressor.Reset(r.Body); err != nil {
		decompressorPool.Put(decompressor)
		http.Error(w, "invalid gzip data", http.StatusBadRequest)
		return false
	}

	r.Body = &decompressedBody{
		Reader: decompressor,
		onClose: func() {
			decompressor.Close()
			decompressorPool.Put(decompressor)
		},
	}
	r.Header.Del("Content-Encoding")
	return true
}

// decompressedBody hands the pooled gzip reader back on Close.
type decompressedBody struct {
	io.Reader
	onClose func()
}

func (b *decompressedBody) Close() error {
	if b.onClose != nil {
		b.onClose()
	}
	return nil
}

type compressingResponseWriter struct {
	http.ResponseWriter
	compressor *gzip.Writer
}

func (w *compressingResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressingResponseWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}
