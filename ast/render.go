// File: render.go
// Title: Breadth-First Tree Renderer
// Description: Renders parse trees breadth-first, one output line per tree
//              depth with the level's labels space-separated in
//              left-to-right sibling order. Supports optional colorized
//              output for terminals.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial breadth-first renderer

package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer renders parse trees level by level
type Renderer struct {
	options RenderOptions
}

// RenderOptions configures tree rendering
type RenderOptions struct {
	// Color enables lipgloss-styled output for terminals
	Color bool

	// Styles overrides the default color styles (optional)
	Styles *Styles
}

// Styles groups the lipgloss styles used for colorized rendering
type Styles struct {
	NonTerminal lipgloss.Style
	Terminal    lipgloss.Style
	Payload     lipgloss.Style
	Epsilon     lipgloss.Style
}

// DefaultStyles returns the default render styles
func DefaultStyles() *Styles {
	return &Styles{
		NonTerminal: lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		Terminal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Payload:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Epsilon:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
	}
}

// NewRenderer creates a renderer with the given options
func NewRenderer(options RenderOptions) *Renderer {
	if options.Color && options.Styles == nil {
		options.Styles = DefaultStyles()
	}
	return &Renderer{options: options}
}

// Levels returns the tree's labels grouped by depth, without styling
func (r *Renderer) Levels(root *Node) [][]string {
	visitor := NewLevelVisitor()
	WalkBreadthFirst(visitor, root)
	return visitor.Levels()
}

// Render returns one output line per tree depth
func (r *Renderer) Render(root *Node) []string {
	levels := r.Levels(root)

	lines := make([]string, 0, len(levels))
	for _, labels := range levels {
		if !r.options.Color {
			lines = append(lines, strings.Join(labels, " "))
			continue
		}

		styled := make([]string, 0, len(labels))
		for _, label := range labels {
			styled = append(styled, r.styleLabel(label))
		}
		lines = append(lines, strings.Join(styled, " "))
	}
	return lines
}

// RenderTo writes the rendered tree to w, one line per level, followed by
// a single blank line
func (r *Renderer) RenderTo(w io.Writer, root *Node) error {
	for _, line := range r.Render(root) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// styleLabel applies the style matching the label's symbol class
func (r *Renderer) styleLabel(label string) string {
	styles := r.options.Styles

	switch label {
	case SymbolExpr, SymbolExprDash, SymbolTerm, SymbolTermDash, SymbolFactor:
		return styles.NonTerminal.Render(label)
	case SymbolPlus, SymbolStar, SymbolOpenParen, SymbolCloseParen:
		return styles.Terminal.Render(label)
	case SymbolEpsilon:
		return styles.Epsilon.Render(label)
	default:
		// IDENTIFIER(...) and NUMBER(...) leaves
		return styles.Payload.Render(label)
	}
}
