// Package testkit holds structural checks shared by parser, format and fuzz
// tests.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

// CheckTreeInvariants verifies the invariants every parsed tree must hold:
// 1) tokens with their trivia reproduce the file byte for byte
// 2) token spans lie inside the file and follow each other in order
// 3) every child span is contained in its parent's span
func CheckTreeInvariants(root *syntax.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got := Reconstruct(root); got != string(sf.Content) {
		return fmt.Errorf("tree is not lossless: got %d bytes, want %d", len(got), len(sf.Content))
	}

	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for _, tok := range syntax.AllTokens(root) {
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %v points to file %d, want %d", tok.Kind, tok.Span.File, sf.ID)
		}
		if tok.Span.End > size || tok.Span.Start > tok.Span.End {
			return fmt.Errorf("token %v span %v out of bounds (size %d)", tok.Kind, tok.Span, size)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %v at %v overlaps previous token ending at %d", tok.Kind, tok.Span, prevEnd)
		}
		if tok.Kind != token.EOF && tok.Span.Empty() {
			return fmt.Errorf("empty %v token at %v", tok.Kind, tok.Span)
		}
		prevEnd = tok.Span.End
	}

	var nested error
	syntax.Walk(root, func(n *syntax.Node) bool {
		if nested != nil {
			return false
		}
		for _, c := range n.Children {
			var sp source.Span
			switch {
			case c.Token != nil && c.Token.Kind != token.EOF:
				sp = c.Token.Span
			case c.Node != nil:
				sp = c.Node.Span
			default:
				continue
			}
			if sp.Empty() {
				continue
			}
			if !n.Span.Contains(sp) {
				nested = fmt.Errorf("%v span %v does not contain child %v", n.Kind, n.Span, sp)
				return false
			}
		}
		return true
	})
	return nested
}

// Reconstruct concatenates every token of the tree with its trivia.
func Reconstruct(root *syntax.Node) string {
	var sb strings.Builder
	for _, tok := range syntax.AllTokens(root) {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(tok.Text)
		for _, tr := range tok.Trailing {
			sb.WriteString(tr.Text)
		}
	}
	return sb.String()
}
