// File: config_test.go
// Title: Core Configuration Tests
// Description: Tests for TOML/YAML loading, dot-notation access,
//              environment overrides, and settings materialization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial tests

package config

import (
	"os"
	"path/filepath"
	"testing"

	sperror "github.com/msto63/scanparse/core/error"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "scanparse.toml", `
[log]
level = "debug"
format = "console"

[output]
color = true

[run]
keep_going = true
max_line_length = 128
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := cfg.GetString("log.level", "info"); got != "debug" {
		t.Errorf("log.level = %q, want %q", got, "debug")
	}
	if !cfg.GetBool("output.color", false) {
		t.Error("output.color = false, want true")
	}
	if got := cfg.GetInt("run.max_line_length", 0); got != 128 {
		t.Errorf("run.max_line_length = %d, want 128", got)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "scanparse.yaml", `
log:
  level: warn
output:
  color: true
run:
  keep_going: false
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := cfg.GetString("log.level", "info"); got != "warn" {
		t.Errorf("log.level = %q, want %q", got, "warn")
	}
	if !cfg.GetBool("output.color", false) {
		t.Error("output.color = false, want true")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("LoadFile() expected error for missing file")
	}
	if !sperror.HasCode(err, sperror.CodeConfigError) {
		t.Errorf("error code = %v, want %v", sperror.GetCode(err), sperror.CodeConfigError)
	}
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "broken.toml", "log = [unclosed")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() expected parse error")
	}
	if !sperror.HasCode(err, sperror.CodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", sperror.GetCode(err), sperror.CodeInvalidConfig)
	}
}

func TestGet_MissingKey(t *testing.T) {
	cfg := New()
	if _, ok := cfg.Get("no.such.key"); ok {
		t.Error("Get() found value for missing key")
	}
	if got := cfg.GetString("no.such.key", "fallback"); got != "fallback" {
		t.Errorf("GetString() = %q, want fallback", got)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SCANPARSE_LOG_LEVEL", "error")
	t.Setenv("SCANPARSE_OUTPUT_COLOR", "true")
	t.Setenv("SCANPARSE_RUN_MAX_LINE_LENGTH", "42")

	cfg := New()

	if got := cfg.GetString("log.level", "info"); got != "error" {
		t.Errorf("log.level override = %q, want %q", got, "error")
	}
	if !cfg.GetBool("output.color", false) {
		t.Error("output.color override = false, want true")
	}
	if got := cfg.GetInt("run.max_line_length", 0); got != 42 {
		t.Errorf("run.max_line_length override = %d, want 42", got)
	}
}

func TestSettings_Defaults(t *testing.T) {
	got := New().Settings()
	want := DefaultSettings()

	if got != want {
		t.Errorf("Settings() = %+v, want defaults %+v", got, want)
	}
}

func TestSettings_FromFile(t *testing.T) {
	path := writeTempConfig(t, "scanparse.toml", `
[log]
level = "trace"

[run]
keep_going = true
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	s := cfg.Settings()
	if s.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "trace")
	}
	if !s.KeepGoing {
		t.Error("KeepGoing = false, want true")
	}
	// untouched keys keep their defaults
	if s.MaxLineLength != DefaultSettings().MaxLineLength {
		t.Errorf("MaxLineLength = %d, want default", s.MaxLineLength)
	}
}
