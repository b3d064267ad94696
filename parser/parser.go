// File: parser.go
// Title: Recursive Descent Expression Parser
// Description: Implements the parsing phase of expression processing.
//              Consumes a token sequence and builds a labeled parse tree
//              following the fixed LL(1) grammar, one method per
//              non-terminal. Syntax errors are returned as typed errors so
//              the caller decides between fail-fast and keep-going runs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/scanparse/ast"
	sperror "github.com/msto63/scanparse/core/error"
	splog "github.com/msto63/scanparse/core/log"
)

// Parser implements recursive descent parsing over a token sequence
// Each line gets a fresh Parser; instances are not reusable across lines
type Parser struct {
	tokens  []Token // Token sequence (read-only)
	index   int     // Cursor into the token sequence
	logger  *splog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *splog.Logger
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Code    sperror.Code
	Column  int
	Token   Token

	cause *sperror.Error
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s (token: %s)",
		pe.Column, pe.Message, pe.Token.String())
}

// Unwrap exposes the coded error so sperror.GetCode works on a ParseError
func (pe *ParseError) Unwrap() error {
	return pe.cause
}

// NewParser creates a parser over the given token sequence
func NewParser(tokens []Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = splog.GetDefault()
	}

	return &Parser{
		tokens:  tokens,
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// Parse parses the token sequence and returns the parse tree
//
// Tokens remaining after the outermost EXPR are not an error; this
// mirrors the tool's original single-pass behavior
func (p *Parser) Parse() (*ast.Node, error) {
	p.logger.Debug("starting parse", splog.Fields{
		"tokens": len(p.tokens),
	})

	tree, err := p.parseExpr()
	if err != nil {
		p.logger.Debug("parse failed", splog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("parse completed", splog.Fields{
		"consumed": p.index,
	})

	return tree, nil
}

// parseExpr parses EXPR -> TERM EXPRDASH
func (p *Parser) parseExpr() (*ast.Node, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	dash, err := p.parseExprDash()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.SymbolExpr, term, dash), nil
}

// parseExprDash parses EXPRDASH -> PLUS TERM EXPRDASH | ε
//
// The right-recursive child shape (PLUS leaf, right operand,
// continuation) is a rendering convenience, not associativity grouping
func (p *Parser) parseExprDash() (*ast.Node, error) {
	if p.current().Type != TokenPlus {
		return ast.NewNode(ast.SymbolExprDash, ast.Leaf(ast.SymbolEpsilon)), nil
	}
	p.advance() // consume '+'

	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	more, err := p.parseExprDash()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.SymbolExprDash, ast.Leaf(ast.SymbolPlus), term, more), nil
}

// parseTerm parses TERM -> FACTOR TERMDASH
func (p *Parser) parseTerm() (*ast.Node, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	dash, err := p.parseTermDash()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.SymbolTerm, factor, dash), nil
}

// parseTermDash parses TERMDASH -> STAR FACTOR TERMDASH | ε
func (p *Parser) parseTermDash() (*ast.Node, error) {
	if p.current().Type != TokenStar {
		return ast.NewNode(ast.SymbolTermDash, ast.Leaf(ast.SymbolEpsilon)), nil
	}
	p.advance() // consume '*'

	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	more, err := p.parseTermDash()
	if err != nil {
		return nil, err
	}

	return ast.NewNode(ast.SymbolTermDash, ast.Leaf(ast.SymbolStar), factor, more), nil
}

// parseFactor parses FACTOR -> IDENTIFIER | NUMBER | OPENPAREN EXPR CLOSEPAREN
func (p *Parser) parseFactor() (*ast.Node, error) {
	switch tok := p.current(); tok.Type {
	case TokenIdentifier:
		p.advance()
		return ast.NewNode(ast.SymbolFactor, ast.IdentifierLeaf(tok.Value)), nil

	case TokenNumber:
		p.advance()
		return ast.NewNode(ast.SymbolFactor, ast.NumberLeaf(tok.Value)), nil

	case TokenOpenParen:
		p.advance() // consume '('

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.current().Type != TokenCloseParen {
			return nil, p.parseError("missing closing parenthesis", sperror.CodeSyntaxUnbalancedParen)
		}
		p.advance() // consume ')'

		return ast.NewNode(ast.SymbolFactor,
			ast.Leaf(ast.SymbolOpenParen), inner, ast.Leaf(ast.SymbolCloseParen)), nil

	default:
		return nil, p.parseError(
			fmt.Sprintf("unexpected token in FACTOR: %s", tok.String()),
			sperror.CodeSyntaxUnexpectedToken)
	}
}

// Utility methods

// current returns the token at the cursor, or an EOF token past the end
// The sequence legitimately ends in EOF; the default only guards against
// cursor bugs
func (p *Parser) current() Token {
	if p.index >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: p.index, Column: p.index + 1}
	}
	return p.tokens[p.index]
}

// advance moves the cursor to the next token
func (p *Parser) advance() {
	if p.index < len(p.tokens) {
		p.index++
	}
}

// parseError creates a typed parse error at the current token
func (p *Parser) parseError(message string, code sperror.Code) *ParseError {
	tok := p.current()
	return &ParseError{
		Message: message,
		Code:    code,
		Column:  tok.Column,
		Token:   tok,
		cause: sperror.New(message).
			WithCode(code).
			WithOperation("parse").
			WithDetail("column", tok.Column).
			WithDetail("token", tok.String()),
	}
}

// ParseLine is a convenience function that tokenizes and parses one line
func ParseLine(line string) (*ast.Node, error) {
	p := NewParser(TokenizeLine(line), Options{})
	return p.Parse()
}
