package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptLayouts(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		width int
		want  string
	}{
		{
			name: "declaration",
			src:  "const a=1",
			want: "const a = 1;\n",
		},
		{
			name:  "call arguments break one per line",
			src:   "foo(aaaaaaaa, bbbbbbbbbb)",
			width: 20,
			want:  "foo(\n  aaaaaaaa,\n  bbbbbbbbbb,\n);\n",
		},
		{
			name:  "expanded number array keeps its trailing comma",
			src:   "const a = [100,200,300,400,500,600]",
			width: 20,
			want:  "const a = [\n  100, 200, 300,\n  400, 500, 600,\n];\n",
		},
		{
			name: "flat arguments get no trailing comma",
			src:  "foo(aaaaaaaa, bbbbbbbbbb,)",
			want: "foo(aaaaaaaa, bbbbbbbbbb);\n",
		},
		{
			name: "last argument hugged",
			src:  `describe("x", () => { run() })`,
			want: "describe(\"x\", () => {\n  run();\n});\n",
		},
		{
			name: "first argument hugged",
			src:  "setTimeout(function () { tick() }, 500)",
			want: "setTimeout(function () {\n  tick();\n}, 500);\n",
		},
		{
			name:  "binary chain under assignment",
			src:   "const result = aaaaaaaaaa + bbbbbbbbbb + cccccccccc",
			width: 30,
			want:  "const result =\n  aaaaaaaaaa +\n  bbbbbbbbbb +\n  cccccccccc;\n",
		},
		{
			name: "member chain fits",
			src:  "promise.then(a).then(b).catch(c)",
			want: "promise.then(a).then(b).catch(c);\n",
		},
		{
			name:  "member chain breaks before dots",
			src:   "promise.then(a).then(b).catch(c)",
			width: 20,
			want:  "promise\n  .then(a)\n  .then(b)\n  .catch(c);\n",
		},
		{
			name: "flat object",
			src:  "const o = {a:1,b:[1,2]}",
			want: "const o = { a: 1, b: [1, 2] };\n",
		},
		{
			name: "object written expanded stays expanded",
			src:  "const o = {\n  a: 1, b: 2 }",
			want: "const o = {\n  a: 1,\n  b: 2,\n};\n",
		},
		{
			name: "arrow parameter gets parentheses",
			src:  "const f = x => x*2",
			want: "const f = (x) => x * 2;\n",
		},
		{
			name:  "return wraps a long chain in parentheses",
			src:   "function f() { return aaaaaaaa && bbbbbbbbbbbb }",
			width: 20,
			want:  "function f() {\n  return (\n    aaaaaaaa &&\n    bbbbbbbbbbbb\n  );\n}\n",
		},
		{
			name:  "throw wraps a long chain in parentheses",
			src:   "function f() { throw aaaaaaaaaa || bbbbbbbbbbbbb }",
			width: 20,
			want:  "function f() {\n  throw (\n    aaaaaaaaaa ||\n    bbbbbbbbbbbbb\n  );\n}\n",
		},
		{
			name:  "wrapped return chain is a fixed point",
			src:   "function f() {\n  return (\n    aaaaaaaa &&\n    bbbbbbbbbbbb\n  );\n}\n",
			width: 20,
			want:  "function f() {\n  return (\n    aaaaaaaa &&\n    bbbbbbbbbbbb\n  );\n}\n",
		},
		{
			name: "redundant parentheses around a short returned chain are dropped",
			src:  "function f() { return (a && b) }",
			want: "function f() {\n  return a && b;\n}\n",
		},
		{
			name: "if else chain",
			src:  "if(a){b()}else if(c){d()}else{e()}",
			want: "if (a) {\n  b();\n} else if (c) {\n  d();\n} else {\n  e();\n}\n",
		},
		{
			name: "if without block",
			src:  "if (a) b(); else { c() }",
			want: "if (a) b();\nelse {\n  c();\n}\n",
		},
		{
			name: "new gets arguments",
			src:  "const m = new Map",
			want: "const m = new Map();\n",
		},
		{
			name: "unary operators",
			src:  "x = - -y; z = typeof q; w = !v",
			want: "x = - -y;\nz = typeof q;\nw = !v;\n",
		},
		{
			name: "blank lines collapse to one",
			src:  "a()\n\n\n\nb()",
			want: "a();\n\nb();\n",
		},
		{
			name: "empty statements are dropped",
			src:  "a();;\n;b()",
			want: "a();\nb();\n",
		},
		{
			name: "class is kept as written",
			src:  "class   A {}\nfoo( a )",
			want: "class   A {}\nfoo(a);\n",
		},
		{
			name: "unknown statement inside a function",
			src:  "function f() {\n  for (;;)   {}\n  return 1\n}",
			want: "function f() {\n  for (;;)   {}\n  return 1;\n}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tweaks []func(*Options)
			if tc.width > 0 {
				tweaks = append(tweaks, width(tc.width))
			}
			assert.Equal(t, tc.want, formatSource(t, "a.js", tc.src, tweaks...))
		})
	}
}

func TestScriptComments(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "header trailing and block comments",
			src:  "// header\n\nconst a = 1 // trailing\n/* block */ foo()\n",
			want: "// header\n\nconst a = 1; // trailing\n/* block */ foo();\n",
		},
		{
			name: "end of file comment",
			src:  "a()\n// end\n",
			want: "a();\n// end\n",
		},
		{
			name: "ignore directive",
			src:  "// quill-ignore\nconst  x   =  1\nconst y=2",
			want: "// quill-ignore\nconst  x   =  1\nconst y = 2;\n",
		},
		{
			name: "comment in empty block",
			src:  "function f() {\n// nothing\n}",
			want: "function f() {\n  // nothing\n}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatSource(t, "a.js", tc.src))
		})
	}
}

func TestCommentOnDroppedComma(t *testing.T) {
	out := formatSource(t, "a.jsonc", "[1, // one\n]")
	assert.Equal(t, "[\n  1 // one\n]\n", out)
}

func TestReturnChainStableAtEveryWidth(t *testing.T) {
	srcs := []string{
		"function f() { return aaaaaaaa && bbbbbbbbbbbb }",
		"function f() { throw aaaaaaaaaa || bbbbbbbbbbbbb }",
		"function f() { return (aaaa + bbbb) * cccc || dddd }",
		"function f() { return (/* why */ aaaaaaaa && bbbbbbbbbbbb) }",
	}
	for _, src := range srcs {
		for _, w := range []int{10, 20, 30, 80} {
			out := formatSource(t, "a.js", src, width(w))
			if strings.Contains(src, "why") {
				assert.Contains(t, out, "/* why */")
			}
		}
	}
}

func TestSingleQuotes(t *testing.T) {
	out := formatSource(t, "a.js", `const s = "it", t = "don't"`, func(o *Options) { o.QuoteStyle = QuoteSingle })
	assert.Equal(t, "const s = 'it',\n  t = \"don't\";\n", out)
}

func TestIdempotentCorpus(t *testing.T) {
	corpus := map[string]string{
		"package.json": `{"name":"quill","version":"1.0.0","scripts":{"build":"go build ./..."},"files":["a","b"],
"nested":{"deep":{"deeper":[1,2,{"x":null}]}}}`,
		"settings.jsonc": "{\n  // editor\n  \"tabSize\": 2, /* inline */ \"rulers\": [80, 100],\n}\n",
		"app.js": `import x from "y"
const config = { port: 8080, host: "localhost", retries: [1, 2, 3], handlers: { onError: (e) => log(e) } }
function start(opts) {
  if (!opts.port) throw new Error("no port: " + opts.host + ":" + opts.port)
  return server.listen(opts.port).then(() => ready()).catch((err) => fail(err))
}
export default start
`,
		"types.ts": "interface A { a: number }\nlet v = 1 as number\nconst list = [ ...items, last ]\n",
	}
	for name, src := range corpus {
		t.Run(name, func(t *testing.T) {
			for _, w := range []int{20, 40, 80} {
				formatSource(t, name, src, width(w))
			}
		})
	}
}
