package parser

import (
	"slices"
	"testing"

	"quill/internal/syntax"
)

func firstExpr(t *testing.T, src string) *syntax.Node {
	t.Helper()
	res, bag := parseSource(t, "x.js", src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(bag))
	}
	stmt := res.Root.NodeAt(0)
	if stmt.Kind != syntax.ExprStmt {
		t.Fatalf("%q: expected expression statement, got %v", src, stmt.Kind)
	}
	return stmt.NodeAt(0)
}

func TestPrecedence(t *testing.T) {
	e := firstExpr(t, "a + b * c - d;")
	// ((a + (b * c)) - d)
	if e.Kind != syntax.BinaryExpr || e.NodeAt(1).Kind != syntax.Name {
		t.Fatalf("unexpected shape %v", e.Kind)
	}
	left := e.NodeAt(0)
	if left.Kind != syntax.BinaryExpr || left.NodeAt(1).Kind != syntax.BinaryExpr {
		t.Errorf("multiplication must bind tighter")
	}

	e = firstExpr(t, "a ** b ** c;")
	if e.NodeAt(1).Kind != syntax.BinaryExpr {
		t.Errorf("** must be right associative")
	}

	e = firstExpr(t, "a && b || c ?? d;")
	if e.Kind != syntax.LogicalExpr {
		t.Errorf("expected logical expression, got %v", e.Kind)
	}
}

func TestCallsAndMembers(t *testing.T) {
	e := firstExpr(t, "a.b?.c[d](e, ...f).#g;")
	if e.Kind != syntax.MemberExpr {
		t.Fatalf("got %v", e.Kind)
	}
	want := []string{"a", ".", "b", "?.", "c", "[", "d", "]", "(", "e", ",", "...", "f", ")", ".", "#", "g"}
	if got := tokenTexts(e); !slices.Equal(got, want) {
		t.Errorf("got %v", got)
	}

	e = firstExpr(t, "new Foo.Bar(1).baz();")
	if e.Kind != syntax.CallExpr {
		t.Fatalf("got %v", e.Kind)
	}
	if find(e, syntax.NewExpr) == nil {
		t.Errorf("missing new expression")
	}
}

func TestArrowAndParens(t *testing.T) {
	e := firstExpr(t, "(a + b);")
	if e.Kind != syntax.ParenExpr {
		t.Errorf("expected paren expression, got %v", e.Kind)
	}
	e = firstExpr(t, "x = ({a, b = 1}, [c, , d]) => ({a});")
	if e.Kind != syntax.AssignExpr || e.NodeAt(1).Kind != syntax.ArrowFunc {
		t.Fatalf("unexpected shape")
	}
	if find(e, syntax.Hole) == nil {
		t.Errorf("expected an array hole")
	}
}

func TestObjectLiteral(t *testing.T) {
	e := firstExpr(t, "x = {a, 'b': 1, [c]: 2, d() { return 1 }, ...e, if: 3};")
	obj := e.NodeAt(1)
	if obj.Kind != syntax.ObjectLit || len(obj.Nodes()) != 6 {
		t.Fatalf("expected 6 properties, got %d", len(obj.Nodes()))
	}
}

func TestRejectedExpressions(t *testing.T) {
	for _, src := range []string{
		"async function f() {}",
		"x = await y;",
		"a!.b;",
		"tag`x`;",
		"let x: T = 1;",
		"function* g() {}",
	} {
		res, bag := parseSource(t, "x.ts", src)
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics %v", src, diagCodes(bag))
		}
		if k := res.Root.NodeAt(0).Kind; k != syntax.Unknown {
			t.Errorf("%q: expected Unknown, got %v", src, k)
		}
		if rebuild(res.Root) != src {
			t.Errorf("%q: not lossless", src)
		}
	}
}
