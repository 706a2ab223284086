package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cardscan/pkg/logger"
)

// JSONErrorHandler renders binding and rendering errors in the JSON error
// envelope and logs them: client errors at warn level, server errors at error
// level.
func JSONErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx C, err error) {
		resp := JSONError(err).(*jsonResponse)

		level := slog.LevelWarn
		if resp.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		r := ctx.Request()
		log.LogAttrs(ctx, level, "request failed",
			logger.Component("http"),
			logger.Error(err),
			slog.Int("status", resp.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response", logger.Error(renderErr))
		}
	}
}
