package syntax

import (
	"strings"
	"testing"

	"quill/internal/source"
	"quill/internal/token"
)

func tk(kind token.Kind, text string, start uint32) token.Token {
	return token.Token{Kind: kind, Text: text, Span: source.Span{Start: start, End: start + uint32(len(text))}}
}

func TestNodeSpanAndAccessors(t *testing.T) {
	name := New(Name, Tok(tk(token.Ident, "a", 0)))
	lit := New(Literal, Tok(tk(token.NumberLit, "1", 4)))
	assign := New(AssignExpr, Sub(name), Tok(tk(token.Assign, "=", 2)), Sub(lit))
	root := New(Module, Sub(New(ExprStmt, Sub(assign), Tok(tk(token.Semicolon, ";", 5)))), Tok(tk(token.EOF, "", 7)))

	if root.Span.Start != 0 || root.Span.End != 6 {
		t.Errorf("EOF must not widen the span, got %v", root.Span)
	}
	if assign.Token(token.Assign) == nil || assign.NodeAt(1) != lit || assign.NodeAt(2) != nil {
		t.Errorf("accessors returned wrong children")
	}
	if root.FirstToken().Text != "a" || root.LastToken().Kind != token.EOF {
		t.Errorf("first/last token mismatch")
	}
	toks := AllTokens(root)
	if len(toks) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(toks))
	}

	var visited []Kind
	Walk(root, func(n *Node) bool {
		visited = append(visited, n.Kind)
		return n.Kind != AssignExpr
	})
	if len(visited) != 3 || visited[2] != AssignExpr {
		t.Errorf("unexpected walk order %v", visited)
	}
}

func TestDump(t *testing.T) {
	root := New(JSONDocument, Sub(New(JSONNumber, Tok(tk(token.NumberLit, "1", 0)))))
	var sb strings.Builder
	if err := Dump(&sb, root); err != nil {
		t.Fatal(err)
	}
	want := "JSONDocument 0..1\n  JSONNumber 0..1\n    NumberLit \"1\"\n"
	if sb.String() != want {
		t.Errorf("got %q", sb.String())
	}
}
