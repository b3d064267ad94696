// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for classifying scanparse
//              errors. Codes separate the two syntax failure classes from
//              input, configuration, and file handling problems so that
//              callers can react to each class individually.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with scanparse error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the scanparse tool
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Syntax errors reported by the parser
	CodeSyntaxUnexpectedToken Code = "SYNTAX_UNEXPECTED_TOKEN"
	CodeSyntaxUnbalancedParen Code = "SYNTAX_UNBALANCED_PAREN"

	// Input handling
	CodeLineTooLong Code = "LINE_TOO_LONG"
	CodeFileError   Code = "FILE_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeSyntaxUnexpectedToken, CodeSyntaxUnbalancedParen,
		CodeLineTooLong, CodeFileError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// IsSyntax reports whether the code describes a syntax error in the input
func (c Code) IsSyntax() bool {
	return c == CodeSyntaxUnexpectedToken || c == CodeSyntaxUnbalancedParen
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntaxUnexpectedToken, CodeSyntaxUnbalancedParen:
		return "syntax"
	case CodeLineTooLong, CodeFileError:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
