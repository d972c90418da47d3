package fuzztests

import (
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

func FuzzLexerLossless(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, name string, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual(fuzzName(name), input))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}

		var sb strings.Builder
		for _, tok := range tokens {
			for _, tr := range tok.Leading {
				sb.WriteString(tr.Text)
			}
			sb.WriteString(tok.Text)
			for _, tr := range tok.Trailing {
				sb.WriteString(tr.Text)
			}
		}
		if sb.String() != string(file.Content) {
			t.Fatalf("lexer lost bytes:\n got %q\nwant %q", sb.String(), file.Content)
		}
	})
}
