package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/diag"
	"quill/internal/parser"
	"quill/internal/printer"
	"quill/internal/source"
	"quill/internal/syntax"
)

func formatSource(t *testing.T, path, src string, tweak ...func(*Options)) string {
	t.Helper()
	opts := DefaultOptions()
	for _, f := range tweak {
		f(&opts)
	}
	res, bag, err := Source(path, []byte(src), opts)
	if err != nil && bag != nil {
		for _, d := range bag.Items() {
			t.Logf("%s: %s", d.Code, d.Message)
		}
	}
	require.NoError(t, err)
	require.NoError(t, CheckStable(path, res.Text, opts), "second pass changed the output")
	return res.Text
}

func width(n int) func(*Options) {
	return func(o *Options) { o.PrintWidth = n }
}

func parseFile(t *testing.T, path, src string) (*source.File, *syntax.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(src)))
	bag := diag.NewBag(100)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return file, res.Root, bag
}

func TestJSONFlatObject(t *testing.T) {
	out := formatSource(t, "a.json", `{"a":1,"b":[1,2,3],"c":{}}`)
	assert.Equal(t, "{ \"a\": 1, \"b\": [1, 2, 3], \"c\": {} }\n", out)
}

func TestJSONKeepsExpandedObject(t *testing.T) {
	src := "{\n\"name\": \"x\", \"list\": [{\"a\": 1}, {\"b\": 2}]}"
	want := `{
  "name": "x",
  "list": [
    { "a": 1 },
    { "b": 2 }
  ]
}
`
	assert.Equal(t, want, formatSource(t, "a.json", src))
}

func TestJSONCComments(t *testing.T) {
	src := "{\n  // c\n  \"a\": 1, // t\n\n\n  \"b\": 2,\n}"
	want := `{
  // c
  "a": 1, // t

  "b": 2
}
`
	assert.Equal(t, want, formatSource(t, "a.jsonc", src))
}

func TestJSONStrictCommentWarns(t *testing.T) {
	res, bag, err := Source("a.json", []byte("// c\n{\"a\":1}"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "// c\n{ \"a\": 1 }\n", res.Text)
	require.True(t, bag.HasWarnings())
	assert.Equal(t, diag.SynCommentInJSON, bag.Items()[0].Code)
}

func TestJSONTrailingCommaRefused(t *testing.T) {
	_, bag, err := Source("a.json", []byte(`[1,]`), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.True(t, bag.HasErrors())
}

func TestJSONNumberFill(t *testing.T) {
	want := "[\n  100, 200, 300,\n  400, 500, 600\n]\n"
	assert.Equal(t, want, formatSource(t, "a.json", `[100,200,300,400,500,600]`, width(20)))
}

func TestJSONStringsKeepQuotesAndEscapes(t *testing.T) {
	out := formatSource(t, "a.json", `{"kéy":"a\"b"}`, func(o *Options) { o.QuoteStyle = QuoteSingle })
	assert.Equal(t, "{ \"kéy\": \"a\\\"b\" }\n", out)
}

func TestDeepJSONNesting(t *testing.T) {
	const depth = 500
	src := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	out := formatSource(t, "deep.json", src)
	assert.Equal(t, depth, strings.Count(out, "["))
	assert.True(t, strings.HasSuffix(out, "]\n"))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "", formatSource(t, "a.js", ""))
	assert.Equal(t, "", formatSource(t, "a.js", "\n\n  \n"))
	assert.Equal(t, "// only\n", formatSource(t, "a.js", "// only"))
}

func TestMalformedTreeReturnsFormatError(t *testing.T) {
	file, root, bag := parseFile(t, "a.json", `{"a" 1}`)
	require.True(t, bag.HasErrors())

	_, err := FormatFile(file, root, DefaultOptions())
	require.Error(t, err)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, syntax.JSONMember, fe.Kind)
	assert.Contains(t, fe.Reason, "':'")
}

func TestKindWithoutRuleIsVerbatim(t *testing.T) {
	file, root, bag := parseFile(t, "a.js", "const o = {a:1,   b:2}")
	require.False(t, bag.HasErrors())

	rules := Rules()
	delete(rules, syntax.ObjectLit)
	res, err := FormatWith(file, root, DefaultOptions(), rules)
	require.NoError(t, err)
	assert.Equal(t, "const o = {a:1,   b:2};\n", res.Text)
}

func TestVerbatimMapping(t *testing.T) {
	file, root, _ := parseFile(t, "a.js", "class   A {}\nfoo(a)")
	res, err := FormatFile(file, root, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "class   A {}\nfoo(a);\n", res.Text)

	var found bool
	for _, m := range res.Mappings {
		got := res.Text[m.Start:m.End]
		if got == "class   A {}" {
			found = true
		}
		if m.Original == (source.Span{File: file.ID, Start: 17, End: 18}) {
			assert.Equal(t, "a", got)
		}
	}
	assert.True(t, found, "verbatim span is not mapped")
}

func TestCRLFOutput(t *testing.T) {
	out := formatSource(t, "a.js", "a()\r\nif (x) { b() }\r\n", func(o *Options) { o.LineEnding = printer.CRLF })
	assert.Equal(t, "a();\r\nif (x) {\r\n  b();\r\n}\r\n", out)
}

func TestTabIndent(t *testing.T) {
	out := formatSource(t, "a.js", "if (a) { b() }", func(o *Options) { o.IndentStyle = printer.IndentTab })
	assert.Equal(t, "if (a) {\n\tb();\n}\n", out)
}

func TestRequote(t *testing.T) {
	cases := []struct {
		raw   string
		style QuoteStyle
		want  string
	}{
		{`'it'`, QuoteDouble, `"it"`},
		{`"it"`, QuoteSingle, `'it'`},
		{`'say "hi"'`, QuoteDouble, `'say "hi"'`},
		{`'don\'t'`, QuoteDouble, `'don\'t'`},
		{`"a\\"`, QuoteSingle, `'a\\'`},
		{`"x"`, QuoteDouble, `"x"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, requote(tc.raw, tc.style), tc.raw)
	}
}
