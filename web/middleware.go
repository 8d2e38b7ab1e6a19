package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrform/pkg/i18n"
	"github.com/dmitrymomot/qrform/pkg/logger"
)

// requestLogger logs one line per request. The request id is added by the
// logger's context extractor.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "request",
				logger.HTTP(r.Method, r.URL.Path, status),
				logger.Duration(time.Since(start)),
				logger.Lang(i18n.GetLocale(r.Context())),
				slog.Int("bytes", ww.BytesWritten()),
			)
		})
	}
}
