// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or the
// listener fails, then drains in-flight requests within the shutdown timeout.
// Listen errors are wrapped with ErrStart and shutdown errors with
// ErrShutdown.
//
// Liveness and Readiness return probe handlers; readiness executes named
// checks against the request context.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
