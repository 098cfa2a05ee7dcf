// Package logger provides logging facilities for the posterswap application.
//
// It implements a simple, structured logging system that writes debug logs to
// an optional file (via log/slog) while keeping a distinct set of user-facing
// messages on stdout/stderr. It defines both the logging interface and the
// standard implementation used throughout the application.
//
// # Core Components
//
// - Logger: The main interface for logging used throughout the application
// - DefaultLogger: Standard implementation that writes to console and/or file
//
// # Message Types
//
// - Info / Warning / Error: internal diagnostics, written to the debug log
// - InfoToUser / WarningToUser: always shown to the operator
// - Success: completion messages, styled to stand out
// - StatusMessage: configuration and progress output, stdout only
//
// The Logger interface is injected into components that need logging:
//
//	rot := rotate.NewRotator(cfg, log, pub)
//
// # Thread Safety
//
// The DefaultLogger implementation is safe for concurrent use by multiple
// goroutines.
package logger
