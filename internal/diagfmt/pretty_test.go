package diagfmt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/source"
)

func oneDiagnostic(path, content string, start, end uint32, code diag.Code, msg string) (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, code, source.Span{File: id, Start: start, End: end}, msg))
	return fs, bag
}

func TestPrettyLayout(t *testing.T) {
	fs, bag := oneDiagnostic("a.json", `{"a" 1}`, 5, 6, diag.SynExpectColon, "expected ':' after property name")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "a.json:1:6: ERROR SYN2003: expected ':' after property name\n" +
		" 1 | {\"a\" 1}\n" +
		"   |      ^\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrettyUnderlinesWholeSpanAndContext(t *testing.T) {
	content := "const a = 1\nlet s = \"open\nconst b = 2\n"
	fs, bag := oneDiagnostic("x.js", content, 20, 25, diag.LexUnterminatedString, "unterminated string")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, 3 source lines and a marker, got:\n%s", buf.String())
	}
	if lines[0] != "x.js:2:9: ERROR LEX1002: unterminated string" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "   |         ^~~~~" {
		t.Errorf("marker = %q", lines[3])
	}
	if lines[4] != " 3 | const b = 2" {
		t.Errorf("context after = %q", lines[4])
	}
}

func TestPrettyTabsAndWideRunes(t *testing.T) {
	content := "\t\"日本\" x"
	fs, bag := oneDiagnostic("w.js", content, 10, 11, diag.SynUnexpectedToken, "unexpected token")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	// таб раскрывается в 4 пробела, каждый иероглиф занимает две колонки
	if lines[1] != " 1 |     \"日本\" x" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "   |            ^" {
		t.Errorf("marker = %q", lines[2])
	}
}

func TestPathModes(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(wd, "src", "test.js")
	fs, bag := oneDiagnostic(filepath.ToSlash(abs), "let x = \"unterminated string\n", 8, 28,
		diag.LexUnterminatedString, "Unterminated string literal")

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"Absolute path", PathModeAbsolute, abs},
		{"Relative path", PathModeRelative, filepath.FromSlash("src/test.js")},
		{"Basename only", PathModeBasename, "test.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.want+":1:9: ERROR LEX1002") {
				t.Errorf("unexpected header:\n%s", buf.String())
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.json", []byte("{\n  \"a\": 1,\n  \"a\": 2\n}"))
	bag := diag.NewBag(10)
	d := diag.New(diag.SevWarning, diag.SynCommentInJSON, source.Span{File: id, Start: 14, End: 17}, "comments are not allowed in JSON").
		WithNote(source.Span{File: id, Start: 4, End: 7}, "first seen here").
		WithNote(source.Span{}, "rename the file to .jsonc")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	out := buf.String()
	for _, want := range []string{
		"n.json:3:3: WARNING SYN2008",
		"  note: n.json:2:3: first seen here\n",
		"  note: rename the file to .jsonc\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := oneDiagnostic("a.json", "[1,]", 2, 3, diag.SynTrailingComma, "trailing comma")
	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	Pretty(&colored, bag, fs, PrettyOpts{PathMode: PathModeBasename, Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("escape codes without Color")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("no escape codes with Color")
	}
}
