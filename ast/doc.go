// File: doc.go
// Title: Parse Tree Package Documentation
// Description: Defines the labeled parse tree produced by the scanparse
//              parser. Provides node construction, visitor patterns, and
//              the breadth-first renderer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parse tree implementation

/*
Package ast defines the parse tree structures for scanned expressions.

This package provides the node definition, visitor patterns, and the
breadth-first renderer for parse trees built over the grammar

	EXPR      -> TERM EXPRDASH
	EXPRDASH  -> PLUS TERM EXPRDASH | ε
	TERM      -> FACTOR TERMDASH
	TERMDASH  -> STAR FACTOR TERMDASH | ε
	FACTOR    -> IDENTIFIER | NUMBER | OPENPAREN EXPR CLOSEPAREN

Each node carries a grammar symbol label; identifier and number leaves
embed the token text, e.g. IDENTIFIER(ab) or NUMBER(12). Rendering is
breadth-first: one output line per tree depth, labels in left-to-right
sibling order.
*/
package ast
