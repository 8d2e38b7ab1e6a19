// Package logger builds *slog.Logger instances for the service and keeps
// attribute names consistent across packages.
//
// New creates a logger from functional options: output format (json or
// text), minimum level, static attributes and ContextExtractor callbacks that
// pull request-scoped values such as the request id out of context.Context
// every time a record is handled.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "qrform"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "qr generated", logger.Component("web"), logger.Duration(d))
package logger
