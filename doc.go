// File: doc.go
// Title: Scanparse Package Documentation
// Description: Package documentation for the scanparse engine facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

// Package scanparse tokenizes and parses lines of arithmetic expressions
// and renders their parse trees level by level.
//
// The Engine is the high-level entry point. It reads input line by line,
// scans each line into a token stream, parses the stream with a
// recursive-descent parser for the expression grammar, and writes a
// breadth-first rendering of the resulting parse tree:
//
//	engine, err := scanparse.NewEngine()
//	if err != nil {
//		...
//	}
//	result, err := engine.RunFile(ctx, "expressions.txt", os.Stdout)
//
// Individual lines can be processed with ProcessLine, which returns the
// token stream, the parse tree, and its level rendering. The lower-level
// building blocks live in the parser and ast packages.
package scanparse
