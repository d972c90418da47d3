package parser

import (
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

func parseSource(t *testing.T, name, src string) (Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(src)))
	bag := diag.NewBag(100)
	res := ParseFile(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	return res, bag
}

// statementKinds: виды операторов верхнего уровня
func statementKinds(root *syntax.Node) []syntax.Kind {
	var out []syntax.Kind
	for _, n := range root.Nodes() {
		out = append(out, n.Kind)
	}
	return out
}

func rebuild(root *syntax.Node) string {
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

func diagCodes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func find(root *syntax.Node, kind syntax.Kind) *syntax.Node {
	var found *syntax.Node
	syntax.Walk(root, func(n *syntax.Node) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

func tokenTexts(n *syntax.Node) []string {
	var out []string
	for _, tok := range syntax.AllTokens(n) {
		if tok.Kind != token.EOF {
			out = append(out, tok.Text)
		}
	}
	return out
}
