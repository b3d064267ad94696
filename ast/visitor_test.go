// File: visitor_test.go
// Title: Parse Tree Visitor Unit Tests
// Description: Tests for depth-first and breadth-first traversal order,
//              pruning, and the level and leaf collecting visitors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package ast

import (
	"reflect"
	"testing"
)

// sampleTree builds the parse tree for "x+y"
func sampleTree() *Node {
	xTerm := NewNode(SymbolTerm,
		NewNode(SymbolFactor, IdentifierLeaf("x")),
		NewNode(SymbolTermDash, Leaf(SymbolEpsilon)))

	yTerm := NewNode(SymbolTerm,
		NewNode(SymbolFactor, IdentifierLeaf("y")),
		NewNode(SymbolTermDash, Leaf(SymbolEpsilon)))

	return NewNode(SymbolExpr,
		xTerm,
		NewNode(SymbolExprDash,
			Leaf(SymbolPlus),
			yTerm,
			NewNode(SymbolExprDash, Leaf(SymbolEpsilon))))
}

func TestWalk_DepthFirstOrder(t *testing.T) {
	var labels []string
	Walk(VisitorFunc(func(node *Node, depth int) bool {
		labels = append(labels, node.Label)
		return true
	}), sampleTree())

	want := []string{
		"EXPR",
		"TERM", "FACTOR", "IDENTIFIER(x)", "TERMDASH", "EPSILON",
		"EXPRDASH", "PLUS",
		"TERM", "FACTOR", "IDENTIFIER(y)", "TERMDASH", "EPSILON",
		"EXPRDASH", "EPSILON",
	}

	if !reflect.DeepEqual(labels, want) {
		t.Errorf("depth-first order = %v, want %v", labels, want)
	}
}

func TestWalk_Pruning(t *testing.T) {
	var labels []string
	Walk(VisitorFunc(func(node *Node, depth int) bool {
		labels = append(labels, node.Label)
		return node.Label != SymbolTerm // do not descend into TERMs
	}), sampleTree())

	for _, label := range labels {
		if label == SymbolFactor {
			t.Fatal("pruned subtree was visited")
		}
	}
}

func TestWalkBreadthFirst_LevelOrder(t *testing.T) {
	var order []string
	var depths []int
	WalkBreadthFirst(VisitorFunc(func(node *Node, depth int) bool {
		order = append(order, node.Label)
		depths = append(depths, depth)
		return true
	}), sampleTree())

	wantOrder := []string{
		"EXPR",
		"TERM", "EXPRDASH",
		"FACTOR", "TERMDASH", "PLUS", "TERM", "EXPRDASH",
		"IDENTIFIER(x)", "EPSILON", "FACTOR", "TERMDASH", "EPSILON",
		"IDENTIFIER(y)", "EPSILON",
	}

	if !reflect.DeepEqual(order, wantOrder) {
		t.Errorf("breadth-first order = %v, want %v", order, wantOrder)
	}

	// Depths must be non-decreasing in breadth-first order
	for i := 1; i < len(depths); i++ {
		if depths[i] < depths[i-1] {
			t.Fatalf("depth decreased at position %d: %v", i, depths)
		}
	}
}

func TestWalk_NilRoot(t *testing.T) {
	called := false
	visitor := VisitorFunc(func(node *Node, depth int) bool {
		called = true
		return true
	})

	Walk(visitor, nil)
	WalkBreadthFirst(visitor, nil)

	if called {
		t.Error("visitor called for nil root")
	}
}

func TestLevelVisitor(t *testing.T) {
	visitor := NewLevelVisitor()
	WalkBreadthFirst(visitor, sampleTree())

	want := [][]string{
		{"EXPR"},
		{"TERM", "EXPRDASH"},
		{"FACTOR", "TERMDASH", "PLUS", "TERM", "EXPRDASH"},
		{"IDENTIFIER(x)", "EPSILON", "FACTOR", "TERMDASH", "EPSILON"},
		{"IDENTIFIER(y)", "EPSILON"},
	}

	if !reflect.DeepEqual(visitor.Levels(), want) {
		t.Errorf("Levels() = %v, want %v", visitor.Levels(), want)
	}

	visitor.Reset()
	if visitor.Levels() != nil {
		t.Error("Reset() did not clear collected levels")
	}
}

func TestLeafVisitor(t *testing.T) {
	visitor := NewLeafVisitor()
	Walk(visitor, sampleTree())

	want := []string{
		"IDENTIFIER(x)", "EPSILON", "PLUS",
		"IDENTIFIER(y)", "EPSILON", "EPSILON",
	}

	if !reflect.DeepEqual(visitor.Leaves(), want) {
		t.Errorf("Leaves() = %v, want %v", visitor.Leaves(), want)
	}
}

func TestLeafVisitor_SkipEpsilon(t *testing.T) {
	visitor := NewLeafVisitor()
	visitor.SkipEpsilon = true
	Walk(visitor, sampleTree())

	want := []string{"IDENTIFIER(x)", "PLUS", "IDENTIFIER(y)"}

	if !reflect.DeepEqual(visitor.Leaves(), want) {
		t.Errorf("Leaves() = %v, want %v", visitor.Leaves(), want)
	}
}
