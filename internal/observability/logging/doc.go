// Package logging provides structured logging utilities built on log/slog.
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: "info", Format: "json"})
//	logger.Info("application started", slog.String("version", "1.0"))
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, logger).Info("processing request")
//	}
package logging
