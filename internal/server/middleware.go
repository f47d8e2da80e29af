package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/metrics"
)

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		// The route template keeps metric cardinality bounded; raw paths with
		// embedded ids would not.
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrw.StatusCode())).Inc()

		s.logger.Info("Request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrw.StatusCode()),
			zap.Duration("duration", time.Since(start)))
	})
}
