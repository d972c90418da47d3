package format

import (
	"quill/internal/doc"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

// verbatim copies the node's source text unchanged. Comments in front of
// the first token and after the last one are printed as usual; everything
// in between, comments included, is part of the copied span.
func (c *Context) verbatim(n *syntax.Node) doc.Doc {
	first, last := firstTok(n), lastTok(n)
	if first == nil {
		return doc.Empty
	}
	span := source.Span{File: first.Span.File, Start: first.Span.Start, End: last.Span.End}
	return doc.Concat(c.leading(first), doc.VerbatimOf(c.file, span), c.trailing(last))
}

// firstTok is the leftmost token of n, skipping empty child nodes (holes,
// empty Bogus). EOF does not count.
func firstTok(n *syntax.Node) *token.Token {
	return edgeTok(n, false)
}

func lastTok(n *syntax.Node) *token.Token {
	return edgeTok(n, true)
}

func edgeTok(n *syntax.Node, fromEnd bool) *token.Token {
	if n == nil {
		return nil
	}
	type frame struct {
		n *syntax.Node
		i int
	}
	stack := []frame{{n: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.n.Children) {
			stack = stack[:len(stack)-1]
			continue
		}
		idx := top.i
		if fromEnd {
			idx = len(top.n.Children) - 1 - top.i
		}
		ch := top.n.Children[idx]
		top.i++
		switch {
		case ch.Token != nil && ch.Token.Kind != token.EOF:
			return ch.Token
		case ch.Node != nil:
			stack = append(stack, frame{n: ch.Node})
		}
	}
	return nil
}
