// File: scanparse_test.go
// Title: Scanparse Engine Tests
// Description: Tests for the high-level engine covering line processing,
//              blank line passthrough, error handling modes, and full
//              stream runs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial tests

package scanparse

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	sperror "github.com/msto63/scanparse/core/error"
	splog "github.com/msto63/scanparse/core/log"
	"github.com/msto63/scanparse/parser"
)

func testEngine(t *testing.T, opts ...Options) *Engine {
	t.Helper()

	options := Options{
		Logger: splog.New().WithOutput(io.Discard),
	}
	if len(opts) > 0 {
		options = opts[0]
		options.Logger = splog.New().WithOutput(io.Discard)
	}

	engine, err := NewEngine(options)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestEngine_ProcessLine(t *testing.T) {
	engine := testEngine(t)

	result, err := engine.ProcessLine(context.Background(), "ab12 + (c*3)")
	if err != nil {
		t.Fatalf("ProcessLine() error = %v", err)
	}

	if result.Blank {
		t.Error("Blank = true for non-blank line")
	}
	if got := len(result.Tokens); got != 9 {
		t.Errorf("len(Tokens) = %d, want 9", got)
	}
	if result.Tokens[len(result.Tokens)-1].Type != parser.TokenEOF {
		t.Error("token stream does not end with EOF")
	}
	if result.Tree == nil {
		t.Fatal("Tree = nil")
	}
	if len(result.Levels) == 0 {
		t.Error("Levels is empty")
	}
	if result.Levels[0][0] != "EXPR" {
		t.Errorf("root level = %v, want [EXPR]", result.Levels[0])
	}
}

func TestEngine_ProcessLine_Blank(t *testing.T) {
	engine := testEngine(t)

	for _, line := range []string{"", "   ", "\t \t", " "} {
		result, err := engine.ProcessLine(context.Background(), line)
		if err != nil {
			t.Fatalf("ProcessLine(%q) error = %v", line, err)
		}
		if !result.Blank {
			t.Errorf("ProcessLine(%q).Blank = false, want true", line)
		}
		if result.Tokens != nil {
			t.Errorf("ProcessLine(%q) produced tokens for blank line", line)
		}
	}
}

func TestEngine_ProcessLine_SyntaxError(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.ProcessLine(context.Background(), "(1+2")
	if err == nil {
		t.Fatal("ProcessLine() expected syntax error")
	}

	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *parser.ParseError", err)
	}
	if !sperror.HasCode(err, sperror.CodeSyntaxUnbalancedParen) {
		t.Errorf("error code = %v, want %v", sperror.GetCode(err), sperror.CodeSyntaxUnbalancedParen)
	}
}

func TestEngine_ProcessLine_TooLong(t *testing.T) {
	engine := testEngine(t, Options{MaxLineLength: 8})

	_, err := engine.ProcessLine(context.Background(), "a+b+c+d+e+f")
	if err == nil {
		t.Fatal("ProcessLine() expected length error")
	}
	if !sperror.HasCode(err, sperror.CodeLineTooLong) {
		t.Errorf("error code = %v, want %v", sperror.GetCode(err), sperror.CodeLineTooLong)
	}
}

func TestEngine_ProcessLine_Cancelled(t *testing.T) {
	engine := testEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.ProcessLine(ctx, "a+b")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestEngine_Run(t *testing.T) {
	engine := testEngine(t)

	input := "a\n\nb*c\n"
	var output strings.Builder

	result, err := engine.Run(context.Background(), strings.NewReader(input), &output)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Lines != 3 {
		t.Errorf("Lines = %d, want 3", result.Lines)
	}
	if result.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", result.Parsed)
	}
	if result.Blank != 1 {
		t.Errorf("Blank = %d, want 1", result.Blank)
	}
	if result.Errors != 0 {
		t.Errorf("Errors = %d, want 0", result.Errors)
	}

	lines := strings.Split(output.String(), "\n")
	if lines[0] != "EXPR" {
		t.Errorf("first output line = %q, want EXPR", lines[0])
	}
	// blank input line passes through as a blank output line
	if !strings.Contains(output.String(), "\n\n") {
		t.Error("output does not contain blank line passthrough")
	}
}

func TestEngine_Run_FailFast(t *testing.T) {
	engine := testEngine(t)

	input := "a\n)\nb\n"
	var output strings.Builder

	result, err := engine.Run(context.Background(), strings.NewReader(input), &output)
	if err == nil {
		t.Fatal("Run() expected error in fail-fast mode")
	}
	if result.Lines != 2 {
		t.Errorf("Lines = %d, want 2 (stopped at error)", result.Lines)
	}
	if result.Errors != 1 {
		t.Errorf("Errors = %d, want 1", result.Errors)
	}
	if result.Parsed != 1 {
		t.Errorf("Parsed = %d, want 1", result.Parsed)
	}
}

func TestEngine_Run_KeepGoing(t *testing.T) {
	engine := testEngine(t, Options{KeepGoing: true})

	input := "a\n)\nb\n"
	var output strings.Builder

	result, err := engine.Run(context.Background(), strings.NewReader(input), &output)
	if err == nil {
		t.Fatal("Run() should return the first error after a keep-going run")
	}
	if result.Lines != 3 {
		t.Errorf("Lines = %d, want 3 (processed all lines)", result.Lines)
	}
	if result.Errors != 1 {
		t.Errorf("Errors = %d, want 1", result.Errors)
	}
	if result.Parsed != 2 {
		t.Errorf("Parsed = %d, want 2", result.Parsed)
	}
}

func TestEngine_Run_LevelOutput(t *testing.T) {
	engine := testEngine(t)

	var output strings.Builder
	_, err := engine.Run(context.Background(), strings.NewReader("x+y\n"), &output)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		"EXPR",
		"TERM EXPRDASH",
		"FACTOR TERMDASH PLUS TERM EXPRDASH",
		"IDENTIFIER(x) EPSILON FACTOR TERMDASH EPSILON",
		"IDENTIFIER(y) EPSILON",
		"",
		"",
	}, "\n")

	if output.String() != want {
		t.Errorf("Run() output =\n%q\nwant\n%q", output.String(), want)
	}
}

func TestEngine_RunFile_Missing(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.RunFile(context.Background(), "no-such-file.txt", io.Discard)
	if err == nil {
		t.Fatal("RunFile() expected error for missing file")
	}
	if !sperror.HasCode(err, sperror.CodeFileError) {
		t.Errorf("error code = %v, want %v", sperror.GetCode(err), sperror.CodeFileError)
	}
}
