// Package logger builds configured *slog.Logger instances.
//
// New applies functional options on top of JSON/Info/stdout defaults:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("service", "validkit")),
//	)
//
// NewFromEnv reads LOG_LEVEL and LOG_FORMAT from the environment instead.
package logger
