// Package logger provides slog-based structured logging with sensible
// production defaults and optional context attribute injection.
//
// The zero-option logger writes JSON to stdout at info level:
//
//	log := logger.New(logger.WithService("creditkit"))
//	log.Info("started")
//
// Environment-driven setup goes through Config:
//
//	var cfg logger.Config
//	cfg, _ = config.Load[logger.Config]()
//	log := logger.NewFromConfig(cfg)
//
// Context extractors add request-scoped attributes at log time:
//
//	log := logger.New(logger.WithContextExtractors(
//		logger.ExtractValue("request_id", requestIDKey),
//	))
package logger
