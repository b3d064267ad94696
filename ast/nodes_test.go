// File: nodes_test.go
// Title: Parse Tree Node Unit Tests
// Description: Tests for node construction, leaf payload extraction,
//              string representation, and structural validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package ast

import (
	"testing"
)

func TestLeaf(t *testing.T) {
	node := Leaf(SymbolEpsilon)

	if !node.IsLeaf() {
		t.Error("Leaf() should create a node without children")
	}
	if node.Label != "EPSILON" {
		t.Errorf("Label = %q, want EPSILON", node.Label)
	}
}

func TestNewNode(t *testing.T) {
	node := NewNode(SymbolExpr, Leaf(SymbolTerm), Leaf(SymbolExprDash))

	if node.IsLeaf() {
		t.Error("NewNode() with children should not be a leaf")
	}
	if len(node.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(node.Children))
	}
	if node.Children[0].Label != "TERM" || node.Children[1].Label != "EXPRDASH" {
		t.Errorf("child order wrong: %v", node.Children)
	}
}

func TestIdentifierLeaf(t *testing.T) {
	node := IdentifierLeaf("ab")

	if node.Label != "IDENTIFIER(ab)" {
		t.Errorf("Label = %q, want IDENTIFIER(ab)", node.Label)
	}

	payload, ok := node.Payload()
	if !ok {
		t.Fatal("Payload() not found in identifier leaf")
	}
	if payload != "ab" {
		t.Errorf("Payload() = %q, want ab", payload)
	}
}

func TestNumberLeaf(t *testing.T) {
	node := NumberLeaf("0012")

	// Digits are preserved as text, leading zeros included
	if node.Label != "NUMBER(0012)" {
		t.Errorf("Label = %q, want NUMBER(0012)", node.Label)
	}

	payload, ok := node.Payload()
	if !ok || payload != "0012" {
		t.Errorf("Payload() = %q, %v, want 0012, true", payload, ok)
	}
}

func TestPayload_Unparameterized(t *testing.T) {
	for _, label := range []string{SymbolExpr, SymbolPlus, SymbolEpsilon} {
		if _, ok := Leaf(label).Payload(); ok {
			t.Errorf("Payload(%s) = true, want false", label)
		}
	}
}

func TestNode_String(t *testing.T) {
	tree := NewNode(SymbolTerm,
		NewNode(SymbolFactor, IdentifierLeaf("x")),
		NewNode(SymbolTermDash, Leaf(SymbolEpsilon)))

	want := "TERM[FACTOR[IDENTIFIER(x)] TERMDASH[EPSILON]]"
	if got := tree.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		wantErr bool
	}{
		{
			name:    "valid tree",
			node:    NewNode(SymbolExpr, Leaf(SymbolTerm)),
			wantErr: false,
		},
		{
			name:    "empty label",
			node:    Leaf(""),
			wantErr: true,
		},
		{
			name:    "nil child",
			node:    &Node{Label: SymbolExpr, Children: []*Node{nil}},
			wantErr: true,
		},
		{
			name:    "nested invalid child",
			node:    NewNode(SymbolExpr, NewNode(SymbolTerm, Leaf(""))),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
