// Package httpserver runs the cardscan HTTP API with graceful shutdown on
// context cancellation, SIGINT or SIGTERM, and provides health probe handlers.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
