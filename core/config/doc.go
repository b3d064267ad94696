// File: doc.go
// Title: Core Configuration Package Documentation
// Description: Package documentation for the scanparse configuration
//              subsystem with TOML/YAML loading and environment overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package config provides configuration loading for scanparse.
//
// Configuration files may be written in TOML or YAML; the format is
// auto-detected from the file extension. Values are read with
// dot-notation keys ("output.color") and every key can be overridden
// through an environment variable built from the SCANPARSE prefix
// (SCANPARSE_OUTPUT_COLOR).
//
// The Settings method materializes the typed settings struct consumed
// by the engine and the command line interface, falling back to
// DefaultSettings for missing keys.
package config
