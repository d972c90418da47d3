package parser

import (
	"testing"

	"quill/internal/diag"
	"quill/internal/syntax"
)

func TestJSONDocument(t *testing.T) {
	src := "{\n  \"a\": [1, 2, {\"b\": null}],\n  \"c\": \"d\"\n}\n"
	res, bag := parseSource(t, "x.json", src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagCodes(bag))
	}
	if res.Root.Kind != syntax.JSONDocument {
		t.Fatalf("root kind %v", res.Root.Kind)
	}
	obj := res.Root.NodeAt(0)
	if obj.Kind != syntax.JSONObject || len(obj.Nodes()) != 2 {
		t.Fatalf("expected object with 2 members, got %v/%d", obj.Kind, len(obj.Nodes()))
	}
	member := obj.NodeAt(0)
	if member.NodeAt(0).Kind != syntax.JSONString || member.NodeAt(1).Kind != syntax.JSONArray {
		t.Errorf("unexpected member shape")
	}
	if got := rebuild(res.Root); got != src {
		t.Errorf("tree is not lossless:\n%q\n%q", got, src)
	}
}

func TestJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
		want diag.Code
	}{
		{"missing colon", "x.json", `{"a" 1}`, diag.SynExpectColon},
		{"bad key", "x.json", `{a: 1}`, diag.SynExpectPropertyKey},
		{"missing value", "x.json", `[1, ]`, diag.SynTrailingComma},
		{"unclosed", "x.json", `{"a": [1`, diag.SynUnclosedDelimiter},
		{"trailing", "x.json", `1 2`, diag.SynTrailingContent},
		{"empty", "x.json", ``, diag.SynExpectValue},
		{"bare word", "x.json", `[undefined]`, diag.SynExpectValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag := parseSource(t, tt.file, tt.src)
			if !bag.HasErrors() || res.Errors == 0 {
				t.Fatalf("expected errors")
			}
			codes := diagCodes(bag)
			found := false
			for _, c := range codes {
				if c == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v among %v", tt.want, codes)
			}
			if got := rebuild(res.Root); got != tt.src {
				t.Errorf("lost bytes: %q", got)
			}
		})
	}
}

func TestJSONCAllowsCommentsAndTrailingCommas(t *testing.T) {
	_, bag := parseSource(t, "tsconfig.jsonc", "{\n  // c\n  \"a\": [1,],\n}\n")
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", diagCodes(bag))
	}
	_, bag = parseSource(t, "x.json", "{\n  // c\n  \"a\": 1\n}\n")
	if bag.HasErrors() || !bag.HasWarnings() {
		t.Errorf("expected only a comment warning, got %v", diagCodes(bag))
	}
}
