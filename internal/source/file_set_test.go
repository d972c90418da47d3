package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.json", []byte("{}"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	latestID, exists := fs.GetLatest("test.json")
	if !exists || latestID != id1 {
		t.Errorf("Expected latest ID %d, got %d (exists=%v)", id1, latestID, exists)
	}

	// тот же путь с новым содержимым
	id2 := fs.Add("test.json", []byte("[]"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("test.json")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}
	if string(fs.Get(id1).Content) != "{}" {
		t.Errorf("old version lost: %q", fs.Get(id1).Content)
	}
	if fs.Get(7) != nil {
		t.Error("Expected nil for unknown FileID")
	}
}

func TestAddDetectsLanguage(t *testing.T) {
	fs := NewFileSet()
	cases := map[string]Language{
		"a.json":   LangJSON,
		"a.jsonc":  LangJSONC,
		"a.js":     LangJS,
		"a.mjs":    LangJS,
		"a.ts":     LangTS,
		"a.cts":    LangTS,
		"a.go":     LangUnknown,
		"dir/B.JS": LangJS,
	}
	for path, want := range cases {
		id := fs.AddVirtual(path, nil)
		if got := fs.Get(id).Language; got != want {
			t.Errorf("%s: language = %v, want %v", path, got, want)
		}
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.js", []byte("ab\ncd\n\nef"))
	f := fs.Get(id)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		got, _ := f.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, got, tt.want)
		}
	}
	if line := f.GetLine(2); line != "cd" {
		t.Errorf("GetLine(2) = %q", line)
	}
	if line := f.GetLine(4); line != "ef" {
		t.Errorf("GetLine(4) = %q", line)
	}
	if line := f.GetLine(9); line != "" {
		t.Errorf("GetLine(9) = %q", line)
	}
}

func TestSliceClamps(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.json", []byte("hello")))
	if got := f.Text(Span{Start: 1, End: 3}); got != "el" {
		t.Errorf("Text = %q", got)
	}
	if got := f.Text(Span{Start: 3, End: 99}); got != "lo" {
		t.Errorf("Text clamp = %q", got)
	}
	if got := f.Slice(Span{Start: 4, End: 2}); got != nil {
		t.Errorf("inverted span should be nil, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags FileFlags
	}{
		{"plain", []byte("a\nb\n"), "a\nb\n", 0},
		{"crlf", []byte("a\r\nb\r\n"), "a\nb\n", FileNormalizedCRLF},
		{"lone cr kept", []byte("a\rb"), "a\rb", 0},
		{"utf8 bom", []byte("\xEF\xBB\xBFx\n"), "x\n", FileHadBOM},
		{"utf16le bom", []byte{0xFF, 0xFE, '{', 0, '}', 0}, "{}", FileHadBOM | FileDecodedUTF16},
		{"utf16be bom crlf", []byte{0xFE, 0xFF, 0, '1', 0, '\r', 0, '\n'}, "1\n", FileHadBOM | FileDecodedUTF16 | FileNormalizedCRLF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Errorf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}

func TestLoadCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte("[1,\r\n2]\r\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "[1,\n2]\n" {
		t.Errorf("content = %q", file.Content)
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
	if len(file.LineIdx) != 2 || file.LineIdx[0] != 3 {
		t.Errorf("LineIdx = %v", file.LineIdx)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 100}); got != a {
		t.Errorf("Cover across files = %v", got)
	}
	if !a.Cover(b).Contains(a) {
		t.Error("cover must contain its inputs")
	}
	if got := a.ShiftLeft(10); got != a {
		t.Errorf("ShiftLeft past zero = %v", got)
	}
	if got := a.ShiftRight(2); got != (Span{File: 1, Start: 6, End: 10}) {
		t.Errorf("ShiftRight = %v", got)
	}
}
