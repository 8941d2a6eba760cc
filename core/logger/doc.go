// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # File Awareness
//
// Every reconciliation finding relates to one string-table file. The
// WithFile helper attaches the file path to the log entry so findings can
// be correlated per file in CI output.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production/CI) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Sync started")
//
//	// Per file:
//	l := logger.WithFile(log, "data/strings/client_strings_npc.xml")
//	l.Warn("Stale dictionary entry", zap.Int("id", 42))
package logger
