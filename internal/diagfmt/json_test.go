package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs, bag := oneDiagnostic("test.js", "let x = \"unterminated\n", 8, 21, diag.LexUnterminatedString, "Unterminated string literal")

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", output.Count, len(output.Diagnostics))
	}
	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" || d.Title != "Unterminated string literal" {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
	want := LocationJSON{File: "test.js", StartByte: 8, EndByte: 21, StartLine: 1, StartCol: 9, EndLine: 1, EndCol: 22}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs, bag := oneDiagnostic("a.json", "[1,]", 2, 3, diag.SynTrailingComma, "trailing comma")
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{PathMode: PathModeBasename})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 {
		t.Errorf("positions present without IncludePositions: %+v", loc)
	}
	data, err := json.Marshal(loc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"file":"a.json","start_byte":2,"end_byte":3}` {
		t.Errorf("json = %s", data)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.js", []byte("a b c d"))
	bag := diag.NewBag(10)
	for i := range uint32(4) {
		d := diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: id, Start: 2 * i, End: 2*i + 1}, "unexpected").
			WithNote(source.Span{File: id}, "note")
		bag.Add(d)
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("count = %d, want 2", out.Count)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Error("notes included without IncludeNotes")
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true})
	if out.Count != 4 || len(out.Diagnostics[3].Notes) != 1 || out.Diagnostics[3].Notes[0].Message != "note" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(1), source.NewFileSet(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n" {
		t.Errorf("got %q", got)
	}
}
