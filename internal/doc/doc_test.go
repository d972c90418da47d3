package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/source"
)

func TestConcatFlattens(t *testing.T) {
	a, b, c := Token("a"), Token("b"), Token("c")
	nested := Concat(a, Concat(b, c))
	flat := Concat(a, b, c)
	assert.Equal(t, flat, nested)

	seq, ok := nested.(Sequence)
	require.True(t, ok)
	assert.Len(t, seq.Parts, 3)

	assert.Equal(t, Empty, Concat())
	assert.Equal(t, Empty, Concat(nil, Empty))
	assert.Equal(t, a, Concat(nil, a, Empty))
}

func TestJoin(t *testing.T) {
	sep := Token(",")
	got := Join(sep, []Doc{Token("a"), Token("b"), Token("c")})
	assert.Equal(t, Concat(Token("a"), sep, Token("b"), sep, Token("c")), got)
	assert.Equal(t, Empty, Join(sep, nil))
	assert.Equal(t, Token("x"), Join(sep, []Doc{Token("x")}))

	// ассоциативность: join поверх concat даёт ту же плоскую последовательность
	assert.Equal(t,
		Concat(Token("a"), sep, Concat(Token("b"), sep, Token("c"))),
		Join(sep, []Doc{Token("a"), Token("b"), Token("c")}))
}

func TestReferentialTransparency(t *testing.T) {
	build := func() Doc {
		return Group(Concat(
			Token("foo("),
			Indent(Concat(SoftLine(), Join(Concat(Token(","), Line()), []Doc{Token("a"), Token("b")}))),
			SoftLine(),
			Token(")"),
		))
	}
	assert.Equal(t, build(), build())
	assert.Equal(t, Dump(build()), Dump(build()))
}

func TestFillOf(t *testing.T) {
	assert.Equal(t, Empty, FillOf(Line(), nil))
	assert.Equal(t, Token("1"), FillOf(Line(), []Doc{Token("1"), Empty}))

	f, ok := FillOf(Line(), []Doc{Token("1"), nil, Token("2")}).(Fill)
	require.True(t, ok)
	assert.Len(t, f.Items, 2)
}

func TestIfBreakTargets(t *testing.T) {
	c, ok := IfGroupBreaks(Token(","), 7).(Conditional)
	require.True(t, ok)
	assert.Equal(t, GroupID(7), c.Group)
	assert.True(t, IsEmpty(c.Flat))

	c, ok = IfGroupFits(Token(" ")).(Conditional)
	require.True(t, ok)
	assert.Equal(t, GroupID(0), c.Group)
	assert.True(t, IsEmpty(c.Break))
}

func TestIDFor(t *testing.T) {
	sp := source.Span{File: 1, Start: 10, End: 20}
	assert.Equal(t, IDFor(sp, "args"), IDFor(sp, "args"))
	assert.NotEqual(t, IDFor(sp, "args"), IDFor(sp, "params"))
	assert.NotEqual(t, IDFor(sp, "args"), IDFor(source.Span{File: 1, Start: 10, End: 21}, "args"))
	assert.NotZero(t, IDFor(source.Span{}, ""))
}

func TestVerbatimOf(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.js", []byte("x = /* keep   me */ 1")))
	sp := source.Span{File: file.ID, Start: 4, End: 19}
	v, ok := VerbatimOf(file, sp).(Verbatim)
	require.True(t, ok)
	assert.Equal(t, "/* keep   me */", v.Text)
	assert.Equal(t, sp, v.Span)
}

func TestDump(t *testing.T) {
	d := Group(Concat(Token("a"), Indent(Concat(HardLine(), Token("b")))))
	want := "group\n  concat\n    text \"a\"\n    indent\n      concat\n        hard\n        text \"b\"\n"
	assert.Equal(t, want, Dump(d))
}
