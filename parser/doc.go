// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Implements the lexical analyzer and parser for arithmetic
//              expressions. Converts input lines into labeled parse trees
//              with typed error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for arithmetic
expression lines.

This package implements a recursive descent parser over a fixed LL(1)
grammar for identifiers, numbers, '+', '*', and parentheses. It includes:

  • Lexical analyzer (tokenizer) producing a finite token sequence per line
  • Recursive descent parser, one method per grammar non-terminal
  • Typed syntax errors distinguishing unexpected tokens from unbalanced
    parentheses

The lexer never fails: unrecognized characters become INVALID tokens that
the parser rejects, so all error reporting happens in one place. Lexer and
parser instances are scoped to a single line.
*/
package parser
