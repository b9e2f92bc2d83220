package monitoring

import (
	"net/http"
	"time"
)

// HTTPLogger is the slice of the application logger the middleware needs
type HTTPLogger interface {
	HTTPRequest(method, path string, statusCode int, durationMs int64)
}

// Middleware records request metrics and an access log line for every
// handled request.
func Middleware(log HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapper := &statusResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			RecordHTTPRequest(r.Method, r.URL.Path, wrapper.statusCode, duration)
			if log != nil {
				log.HTTPRequest(r.Method, r.URL.Path, wrapper.statusCode, duration.Milliseconds())
			}
		})
	}
}

// statusResponseWriter captures the response status code
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
