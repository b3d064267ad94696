// File: nodes.go
// Title: Parse Tree Node Definitions
// Description: Defines the labeled parse tree node produced by the parser
//              together with the grammar symbol labels. Nodes own their
//              children exclusively; the tree is constructed bottom-up
//              during parsing and never mutated afterwards.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial parse tree node definitions

package ast

import (
	"fmt"
	"strings"
)

// Grammar symbol labels as they appear in rendered trees
const (
	SymbolExpr       = "EXPR"
	SymbolExprDash   = "EXPRDASH"
	SymbolTerm       = "TERM"
	SymbolTermDash   = "TERMDASH"
	SymbolFactor     = "FACTOR"
	SymbolPlus       = "PLUS"
	SymbolStar       = "STAR"
	SymbolOpenParen  = "OPENPAREN"
	SymbolCloseParen = "CLOSEPAREN"
	SymbolEpsilon    = "EPSILON"
)

// Node represents one labeled node of a parse tree
// Children are ordered and exclusively owned; leaf nodes have none
type Node struct {
	Label    string
	Children []*Node
}

// Leaf creates a node without children
func Leaf(label string) *Node {
	return &Node{Label: label}
}

// NewNode creates a node with the given ordered children
func NewNode(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// IdentifierLeaf creates a FACTOR payload leaf for an identifier token
func IdentifierLeaf(name string) *Node {
	return Leaf(fmt.Sprintf("IDENTIFIER(%s)", name))
}

// NumberLeaf creates a FACTOR payload leaf for a number token
// The digits are preserved as text, never parsed into a numeric value
func NumberLeaf(digits string) *Node {
	return Leaf(fmt.Sprintf("NUMBER(%s)", digits))
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// String returns a single-line bracketed representation of the subtree
func (n *Node) String() string {
	if n.IsLeaf() {
		return n.Label
	}

	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		parts = append(parts, child.String())
	}
	return fmt.Sprintf("%s[%s]", n.Label, strings.Join(parts, " "))
}

// Accept implements the visitor pattern for depth-first traversal
func (n *Node) Accept(visitor Visitor) {
	Walk(visitor, n)
}

// Validate performs basic structural validation of the subtree
func (n *Node) Validate() error {
	if n.Label == "" {
		return fmt.Errorf("node label must not be empty")
	}
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%s: child %d is nil", n.Label, i)
		}
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Payload extracts the parameter text from a parameterized leaf label,
// e.g. "IDENTIFIER(ab)" yields ("ab", true). The second return value is
// false for unparameterized labels
func (n *Node) Payload() (string, bool) {
	open := strings.IndexByte(n.Label, '(')
	if open < 0 || !strings.HasSuffix(n.Label, ")") {
		return "", false
	}
	return n.Label[open+1 : len(n.Label)-1], true
}
