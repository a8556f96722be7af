package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TemirB/cocktail-shop/internal/observability"
)

// timingWriter adds app;dur=... right before the header goes out.
type timingWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.Header().Add("Server-Timing", fmt.Sprintf("app;dur=%.2f", sinceMs(w.start)))
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *timingWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		if !w.wroteHeader {
			w.WriteHeader(http.StatusOK)
		}
		f.Flush()
	}
}

// ServerTimingApp measures request handling time, reports it in the
// Server-Timing header and to Metrics.ObserveHTTP under the chi route pattern.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(&timingWriter{ResponseWriter: w, start: start}, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveHTTP(r.Method, route, status, sinceMs(start))
		})
	}
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / 1e6
}
