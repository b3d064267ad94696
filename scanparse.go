// File: scanparse.go
// Title: Scanparse Main Interface and Engine
// Description: Provides the main scanparse engine interface and high-level
//              API for tokenizing, parsing, and rendering arithmetic
//              expression lines. Integrates lexer, parser, and AST renderer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial scanparse engine implementation

package scanparse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/msto63/scanparse/ast"
	sperror "github.com/msto63/scanparse/core/error"
	splog "github.com/msto63/scanparse/core/log"
	"github.com/msto63/scanparse/parser"
)

// Engine coordinates tokenizing, parsing, and rendering of input lines
type Engine struct {
	renderer *ast.Renderer
	logger   *splog.Logger
	options  Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *splog.Logger

	// LogLevel overrides the logger level when non-zero
	LogLevel splog.Level

	// MaxLineLength limits input line length in runes (default: 4096)
	MaxLineLength int

	// KeepGoing continues past syntax errors instead of failing fast
	KeepGoing bool

	// Renderer used for parse tree output (optional, defaults to plain)
	Renderer *ast.Renderer
}

// LineResult holds the outcome of processing a single input line
type LineResult struct {
	// Line is the original input line
	Line string

	// Tokens holds the scanned token stream including the EOF token
	Tokens []parser.Token

	// Tree is the root of the parse tree
	Tree *ast.Node

	// Levels holds the breadth-first rendering, one slice per depth
	Levels [][]string

	// Blank reports that the line contained only whitespace
	Blank bool
}

// RunResult summarizes a full run over an input stream
type RunResult struct {
	// Lines is the total number of input lines read
	Lines int

	// Parsed is the number of lines parsed successfully
	Parsed int

	// Blank is the number of whitespace-only lines
	Blank int

	// Errors is the number of lines rejected with a syntax error
	Errors int

	// Duration is the wall-clock time of the run
	Duration time.Duration
}

// NewEngine creates a new engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:        splog.GetDefault(),
		MaxLineLength: 4096,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxLineLength > 0 {
			options.MaxLineLength = provided.MaxLineLength
		}
		options.LogLevel = provided.LogLevel
		options.KeepGoing = provided.KeepGoing
		options.Renderer = provided.Renderer
	}

	renderer := options.Renderer
	if renderer == nil {
		renderer = ast.NewRenderer(ast.RenderOptions{})
	}

	logger := options.Logger.
		WithField("component", "engine").
		WithRunID(uuid.NewString())
	// a zero LogLevel keeps the level of the provided logger
	if options.LogLevel != 0 {
		logger = logger.WithLevel(options.LogLevel)
	}

	engine := &Engine{
		renderer: renderer,
		logger:   logger,
		options:  options,
	}

	logger.Debug("scanparse engine initialized", splog.Fields{
		"maxLineLength": options.MaxLineLength,
		"keepGoing":     options.KeepGoing,
	})

	return engine, nil
}

// ProcessLine tokenizes and parses a single input line
//
// Whitespace-only lines are reported as blank without scanning. A syntax
// error is returned as *parser.ParseError; the caller decides whether the
// run continues.
func (e *Engine) ProcessLine(ctx context.Context, line string) (*LineResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &LineResult{Line: line}

	if isBlank(line) {
		result.Blank = true
		return result, nil
	}

	if err := e.validateLine(line); err != nil {
		return nil, err
	}

	result.Tokens = parser.TokenizeLine(line)

	e.logger.Trace("line tokenized", splog.Fields{
		"line":   line,
		"tokens": len(result.Tokens),
	})

	p := parser.NewParser(result.Tokens, parser.Options{Logger: e.logger})
	tree, err := p.Parse()
	if err != nil {
		e.logger.Debug("line rejected", splog.Fields{
			"line":  line,
			"error": err.Error(),
		})
		return result, err
	}

	result.Tree = tree
	result.Levels = e.renderer.Levels(tree)

	return result, nil
}

// validateLine enforces the input length bound
func (e *Engine) validateLine(line string) error {
	length := len([]rune(line))
	if length > e.options.MaxLineLength {
		return sperror.Newf("line exceeds %d characters", e.options.MaxLineLength).
			WithCode(sperror.CodeLineTooLong).
			WithDetail("length", length)
	}
	return nil
}

// isBlank reports whether the line contains only Unicode whitespace
func isBlank(line string) bool {
	return strings.TrimFunc(line, unicode.IsSpace) == ""
}

// Run processes every line of the input stream and writes parse tree
// renderings to the output writer
//
// Blank input lines are passed through as blank output lines. On a syntax
// error the run stops with that error unless KeepGoing is set, in which
// case the error is counted, processing continues with the next line, and
// the first error is returned together with the completed run result.
func (e *Engine) Run(ctx context.Context, input io.Reader, output io.Writer) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*e.options.MaxLineLength+16)

	var firstErr error

	for scanner.Scan() {
		result.Lines++
		line := scanner.Text()

		lineResult, err := e.ProcessLine(ctx, line)
		if err != nil {
			var parseErr *parser.ParseError
			if !errors.As(err, &parseErr) && !sperror.HasCode(err, sperror.CodeLineTooLong) {
				// context cancellation or another non-input failure
				result.Duration = time.Since(start)
				return result, err
			}

			result.Errors++
			e.logger.WarnWithErr("syntax error", err, splog.Fields{
				"inputLine": result.Lines,
			})

			if !e.options.KeepGoing {
				result.Duration = time.Since(start)
				return result, err
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if lineResult.Blank {
			result.Blank++
			if _, err := fmt.Fprintln(output); err != nil {
				result.Duration = time.Since(start)
				return result, sperror.Wrap(err, "cannot write output").
					WithCode(sperror.CodeFileError)
			}
			continue
		}

		result.Parsed++
		if err := e.renderer.RenderTo(output, lineResult.Tree); err != nil {
			result.Duration = time.Since(start)
			return result, sperror.Wrap(err, "cannot write output").
				WithCode(sperror.CodeFileError)
		}
	}

	if err := scanner.Err(); err != nil {
		result.Duration = time.Since(start)
		return result, sperror.Wrap(err, "cannot read input").
			WithCode(sperror.CodeFileError)
	}

	result.Duration = time.Since(start)

	e.logger.Info("run completed", splog.Fields{
		"lines":  result.Lines,
		"parsed": result.Parsed,
		"blank":  result.Blank,
		"errors": result.Errors,
	})

	return result, firstErr
}

// RunFile opens the named file and processes it with Run
func (e *Engine) RunFile(ctx context.Context, path string, output io.Writer) (*RunResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, sperror.Wrap(err, "cannot open input file").
			WithCode(sperror.CodeFileError).
			WithDetail("path", path)
	}
	defer file.Close()

	e.logger.Debug("processing input file", splog.Fields{"path": path})

	return e.Run(ctx, file, output)
}
