// Package log provides structured logging for the scanparse tool.
//
// Package: log
// Title: scanparse Logging Framework
// Description: This package implements a structured, leveled logging system
//              with contextual fields, multiple output formats, and a
//              package-level default logger. Components receive a *Logger
//              through their Options and fall back to the default.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Six log levels from trace to fatal
// - Structured fields via the Fields map
// - JSON, text, and colored console formatters
// - Run ID tagging for correlating all messages of one run
// - Severity-aware error logging via LogError
//
// Usage:
//   import splog "github.com/msto63/scanparse/core/log"
//
//   logger := splog.New().WithName("parser").WithLevel(splog.LevelDebug)
//   logger.Debug("parsing line", splog.Fields{"line": 3, "tokens": 9})
package log
