// Package error provides structured error handling for the scanparse tool.
//
// Package: error
// Title: scanparse Error Handling
// Description: This package implements a structured error handling system
//              with error codes, severity levels, and key-value details.
//              It distinguishes the two syntax failure classes the parser
//              reports from input and configuration problems, so that the
//              CLI driver can decide between fail-fast and keep-going runs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with coded errors
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent diagnostics
// - Error severity levels and categorization
// - Full compatibility with errors.Is / errors.As
//
// Usage:
//   import sperror "github.com/msto63/scanparse/core/error"
//
//   // Create a new error with classification
//   err := sperror.New("missing closing parenthesis").
//     WithCode(sperror.CodeSyntaxUnbalancedParen).
//     WithDetail("line", 3)
//
//   // Check error class
//   if sperror.GetCode(err).IsSyntax() {
//     // syntax error in user input, not a tool failure
//   }
package error
