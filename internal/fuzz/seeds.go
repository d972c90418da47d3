package fuzztests

import (
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var jsonSeeds = []string{
	`{}`,
	`{"a":1,"b":[1,2,3],"c":{"d":null,"e":true}}`,
	"{\n  \"expanded\": [\n    1\n  ]\n}\n",
	"// header\n{\"a\": 1, /* inline */ \"b\": 2}\n",
	`[[1, 2], [3, 4], {"k": "v"}]`,
	`{"a" 1}`,
	`{"unterminated": "x`,
	"[1,\n// one\n]",
	`"kéy"`,
}

var scriptSeeds = []string{
	"const a = 1, b = 'two';\n",
	"function f(a, b) { return a + b * 2; }\n",
	"if (x) y(); else if (z) { w(); } else v();\n",
	"setTimeout(() => { done(); }, 100);\n",
	"const total = items.filter(x => x.ok).map(x => x.value).reduce((a, b) => a + b, 0);\n",
	"let o = { a, ...rest, b: 2 };\n",
	"class A { m() {} }\nfor (const x of xs) {}\n",
	"x = `t ${a + b}`;\ny = /re[/]/g;\n",
	"a ? b : c ? d : e;\n",
	"throw new Error(\"bad\" + (x ?? y));\n",
	"// quill-ignore\nconst   keep  =  1;\n",
	"f(a,, b",
	"/* open",
}

var typeSeeds = []string{
	"type A = { x: number };\nexport interface B<T> extends C {}\n",
	"const x: number = 1 as number;\n",
}

// addCorpusSeeds seeds f with (name, input) pairs; the name picks the
// language.
func addCorpusSeeds(f *testing.F) {
	for _, s := range jsonSeeds {
		f.Add("seed.json", clampSeed([]byte(s)))
		f.Add("seed.jsonc", clampSeed([]byte(s)))
	}
	for _, s := range scriptSeeds {
		f.Add("seed.js", clampSeed([]byte(s)))
	}
	for _, s := range typeSeeds {
		f.Add("seed.ts", clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

// fuzzName keeps the fuzzer on supported extensions.
func fuzzName(name string) string {
	switch name {
	case "seed.json", "seed.jsonc", "seed.js", "seed.ts":
		return name
	}
	return "seed.js"
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
