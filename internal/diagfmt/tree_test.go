package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
)

func parseVirtual(t *testing.T, path, src string) (*source.FileSet, *parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(src)))
	bag := diag.NewBag(10)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	return fs, &res
}

func TestTreePretty(t *testing.T) {
	fs, res := parseVirtual(t, "a.json", `{"a": 1}`)
	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, res.Root, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "JSONDocument 1:1-1:9") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  JSONObject") {
		t.Errorf("second line = %q", lines[1])
	}
	if !strings.Contains(buf.String(), "        StringLit \"\\\"a\\\"\"") {
		t.Errorf("member key token missing:\n%s", buf.String())
	}
}

func TestTreeJSONShape(t *testing.T) {
	_, res := parseVirtual(t, "a.json", `[1]`)
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, res.Root); err != nil {
		t.Fatal(err)
	}
	var tree TreeJSON
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if tree.Node != "JSONDocument" || len(tree.Children) == 0 {
		t.Fatalf("root = %+v", tree)
	}
	arr := tree.Children[0]
	if arr.Node != "JSONArray" || len(arr.Children) != 3 {
		t.Fatalf("array = %+v", arr)
	}
	if arr.Children[0].Token != "LBracket" || arr.Children[1].Node != "JSONNumber" {
		t.Errorf("array children = %+v", arr.Children)
	}
}

func TestTokensOutput(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.js", []byte("a // c\n")))
	toks := lexer.Tokenize(file, lexer.Options{})

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pretty.String(), "(trailing: Space, LineComment)") {
		t.Errorf("trailing trivia missing:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Text != "a" || out[1].Kind != "EOF" {
		t.Errorf("tokens = %+v", out)
	}
}
