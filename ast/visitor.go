// File: visitor.go
// Title: Parse Tree Visitor Pattern Implementation
// Description: Implements visitors for traversing parse trees. Provides
//              depth-first and breadth-first walks plus common visitor
//              implementations for collecting leaves and level labels.
//              Traversals hold borrowed references only; no subtree is
//              copied.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor is called for every node during a traversal
// Depth is 0 for the root; returning false prunes the node's children
// during depth-first walks (breadth-first walks ignore the return value)
type Visitor interface {
	VisitNode(node *Node, depth int) bool
}

// VisitorFunc adapts a function to the Visitor interface
type VisitorFunc func(node *Node, depth int) bool

// VisitNode implements Visitor
func (f VisitorFunc) VisitNode(node *Node, depth int) bool {
	return f(node, depth)
}

// Walk traverses the tree depth-first in child order
func Walk(visitor Visitor, root *Node) {
	walk(visitor, root, 0)
}

func walk(visitor Visitor, node *Node, depth int) {
	if node == nil {
		return
	}
	if !visitor.VisitNode(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(visitor, child, depth+1)
	}
}

// WalkBreadthFirst traverses the tree level by level, siblings left to right
func WalkBreadthFirst(visitor Visitor, root *Node) {
	if root == nil {
		return
	}

	type queued struct {
		node  *Node
		depth int
	}

	queue := []queued{{root, 0}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		visitor.VisitNode(item.node, item.depth)

		for _, child := range item.node.Children {
			queue = append(queue, queued{child, item.depth + 1})
		}
	}
}

// LevelVisitor collects node labels grouped by depth during a
// breadth-first walk
type LevelVisitor struct {
	levels [][]string
}

// NewLevelVisitor creates a new level-collecting visitor
func NewLevelVisitor() *LevelVisitor {
	return &LevelVisitor{}
}

// VisitNode implements Visitor
func (lv *LevelVisitor) VisitNode(node *Node, depth int) bool {
	for len(lv.levels) <= depth {
		lv.levels = append(lv.levels, nil)
	}
	lv.levels[depth] = append(lv.levels[depth], node.Label)
	return true
}

// Levels returns the collected labels, one slice per tree depth
func (lv *LevelVisitor) Levels() [][]string {
	return lv.levels
}

// Reset clears the visitor for reuse
func (lv *LevelVisitor) Reset() {
	lv.levels = nil
}

// LeafVisitor collects leaf labels in depth-first (in-order) sequence
type LeafVisitor struct {
	// SkipEpsilon drops EPSILON leaves from the collected sequence
	SkipEpsilon bool

	leaves []string
}

// NewLeafVisitor creates a new leaf-collecting visitor
func NewLeafVisitor() *LeafVisitor {
	return &LeafVisitor{}
}

// VisitNode implements Visitor
func (lv *LeafVisitor) VisitNode(node *Node, depth int) bool {
	if !node.IsLeaf() {
		return true
	}
	if lv.SkipEpsilon && node.Label == SymbolEpsilon {
		return true
	}
	lv.leaves = append(lv.leaves, node.Label)
	return true
}

// Leaves returns the collected leaf labels in traversal order
func (lv *LeafVisitor) Leaves() []string {
	return lv.leaves
}

// Reset clears the visitor for reuse
func (lv *LeafVisitor) Reset() {
	lv.leaves = nil
}
