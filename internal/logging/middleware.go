package logging

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger returns HTTP middleware that ensures a request_id is
// present on the context, sourcing it from an inbound X-Request-Id
// header if provided, echoes it on the response, and logs the outcome
// of every request.
func RequestLogger(base Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = Noop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming := r.Header.Get(requestIDHeader); incoming != "" {
				ctx = context.WithValue(ctx, requestIDKey, incoming)
			}
			ctx, id := EnsureRequestID(ctx)
			w.Header().Set(requestIDHeader, id)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			base.Info(ctx, "request served",
				String("request_id", id),
				String("method", r.Method),
				String("path", r.URL.Path),
				Int("status", ww.Status()),
				Float64("duration_ms", float64(time.Since(start))/float64(time.Millisecond)))
		})
	}
}
