// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Awareness
//
// Every reconciliation run gets its own id. The WithRunID helper attaches it to
// the logger so all entries of one run can be correlated with the rows the run
// wrote to a database log table.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Reconciliation started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
