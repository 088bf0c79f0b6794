package middleware

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/coursekit/course-api/internal/api/shared"
	"github.com/coursekit/course-api/internal/platform/logger"
)

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// NewTraceMiddleware returns middleware that assigns each request a trace ID,
// echoes it in the X-Request-Id response header and stores a logger carrying
// it in the request context. A well-formed incoming X-Request-Id is reused.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(shared.TraceIDHeader)
			if !traceIDPattern.MatchString(traceID) {
				traceID = shared.NewTraceID()
			}
			w.Header().Set(shared.TraceIDHeader, traceID)

			ctx := shared.WithTraceID(r.Context(), traceID)
			ctx = logger.WithRequestID(ctx, traceID)
			log := base.With(slog.String("request_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
