// Package logger builds configured slog.Logger instances for the catalog
// services.
//
// It wraps the standard library log/slog with a small functional-options
// factory covering the two output formats used across environments (JSON for
// aggregation, text for local development), log level selection and static
// service attributes:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithAttr(slog.String("service", "catalog-api")),
//	)
package logger
