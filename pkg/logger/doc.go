// Package logger builds *slog.Logger instances for cardscan services.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with LogHandlerDecorator, which injects attributes pulled from the
// context (request id, scan id, ...) each time a record is handled.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "cardscan"),
//	    logger.WithContextValue("request_id", requestid.ContextKey()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "code scanned",
//	    logger.ScanID(id),
//	    logger.PayloadFormat("vcard"),
//	)
//
// Attribute helpers such as Error and RequestID return an empty slog.Attr for
// zero inputs, so they can be passed unconditionally:
//
//	log.Warn("record creation failed", logger.Error(err))
package logger
