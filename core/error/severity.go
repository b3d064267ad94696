// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization in logs and diagnostics. A syntax error in a
//              user expression is an expected, low-severity event; a broken
//              configuration or unreadable input file is not.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect the tool itself
	// Examples: syntax errors in user input, invalid characters
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single run
	// Examples: over-long input lines, unparseable config values
	SeverityMedium

	// SeverityHigh indicates a serious error that prevents the run entirely
	// Examples: unreadable input file, missing configuration file
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-2)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeFileError, CodeConfigError:
		return SeverityHigh

	case CodeLineTooLong, CodeInvalidConfig, CodeInternal:
		return SeverityMedium

	case CodeSyntaxUnexpectedToken, CodeSyntaxUnbalancedParen, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
