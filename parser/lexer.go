// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of expression
//              processing. Converts one line of input into a sequence of
//              tokens for the parser. The lexer never fails: characters it
//              does not recognize become INVALID tokens that the parser
//              rejects later.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"unicode"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenInvalid

	// Literals
	TokenIdentifier // ab, x
	TokenNumber     // 12, 307

	// Operators
	TokenPlus // +
	TokenStar // *

	// Delimiters
	TokenOpenParen  // (
	TokenCloseParen // )
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (empty for operators, EOF, and INVALID)
	Position int       // Rune position in the line (0-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier, TokenNumber:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	default:
		return t.Type.String()
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenInvalid:
		return "INVALID"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenStar:
		return "STAR"
	case TokenOpenParen:
		return "OPEN_PAREN"
	case TokenCloseParen:
		return "CLOSE_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of one line of input
// Each line gets a fresh Lexer; instances are not reusable across lines
type Lexer struct {
	input    []rune // Input line
	position int    // Current position in input (points to current rune)
	readPos  int    // Current reading position (after current rune)
	ch       rune   // Current rune under examination
}

// NewLexer creates a new lexer for the given line
func NewLexer(line string) *Lexer {
	l := &Lexer{
		input: []rune(line),
	}
	l.readChar() // Initialize first rune
	return l
}

// NextToken returns the next token from the input
// At end of input it returns a TokenEOF token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position

	switch l.ch {
	case '+':
		l.readChar()
		return Token{Type: TokenPlus, Position: pos, Column: pos + 1}
	case '*':
		l.readChar()
		return Token{Type: TokenStar, Position: pos, Column: pos + 1}
	case '(':
		l.readChar()
		return Token{Type: TokenOpenParen, Position: pos, Column: pos + 1}
	case ')':
		l.readChar()
		return Token{Type: TokenCloseParen, Position: pos, Column: pos + 1}
	case 0:
		return Token{Type: TokenEOF, Position: pos, Column: pos + 1}
	default:
		if isDigit(l.ch) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Column: pos + 1}
		}
		if isLetter(l.ch) {
			return Token{Type: TokenIdentifier, Value: l.readIdentifier(), Position: pos, Column: pos + 1}
		}
		// The character's identity is not retained; the parser rejects the
		// token by kind alone
		l.readChar()
		return Token{Type: TokenInvalid, Position: pos, Column: pos + 1}
	}
}

// Tokenize returns all tokens of the line in order, ending with exactly
// one EOF token. The whole line is tokenized before parsing begins
func (l *Lexer) Tokenize() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens
}

// readChar reads the next rune and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL represents end of input
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++
}

// peekChar returns the next rune without advancing position
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier: the current letter and all
// immediately following letters. Digits and underscores do not continue
// an identifier, so "ab12" lexes as IDENTIFIER(ab) NUMBER(12)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// readNumber reads a maximal run of ASCII digits, preserved as text
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// skipWhitespace skips any Unicode whitespace
func (l *Lexer) skipWhitespace() {
	for l.ch != 0 && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// isLetter checks if the rune is alphabetic
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

// isDigit checks if the rune is an ASCII digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeLine is a convenience function that tokenizes one line
func TokenizeLine(line string) []Token {
	lexer := NewLexer(line)
	return lexer.Tokenize()
}
