package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request, echoes the request id set by
// middleware.RequestID and feeds the HTTP metrics. m may be nil.
func requestLogger(logger logging.Logger, m metricsSink) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := middleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set(common.RequestIDHeaderName, requestID)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			logger.Info(r.Context(), "HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed,
				"request_id", requestID,
				"remote_addr", r.RemoteAddr,
			)

			if m != nil {
				m.ObserveHTTP(r.Method, status, elapsed.Seconds())
			}
		})
	}
}
