// Package logging provides structured logging for deckd.
//
// This package wraps zap with convenience functions for common logging
// patterns used throughout the runtime. Logging is silent by default so
// that the grid simulator can own the terminal; set DECKD_LOG_LEVEL or
// pass --log-level to enable output on stderr.
//
// # Log Levels
//
//   - Debug: per-line command output, probe classification detail
//   - Info: presses, command dispatch/exit, state changes
//   - Warn: verification mismatches, icon resolver fallbacks, timeouts
//   - Error: spawn failures, config problems
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Toggle state changed",
//	    zap.String("button", "WiFi"),
//	    zap.String("state", "on"),
//	)
//
// All logging functions are safe for concurrent use; command output
// drain goroutines log through the same logger as the press dispatcher.
package logging
