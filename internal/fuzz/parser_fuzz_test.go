package fuzztests

import (
	"errors"
	"testing"
	"time"

	"quill/internal/diag"
	"quill/internal/format"
	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input; longer means a
// recovery loop that does not advance.
const parseTimeout = 5 * time.Second

func FuzzParserInvariants(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, name string, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual(fuzzName(name), input))

		done := make(chan error, 1)
		go func() {
			bag := diag.NewBag(128)
			res := parser.ParseFile(file, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: 128,
			})
			done <- testkit.CheckTreeInvariants(res.Root, file)
		}()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("invariant violated: %v", err)
			}
		case <-time.After(parseTimeout):
			t.Fatalf("parser did not finish within %v on %d bytes", parseTimeout, len(input))
		}
	})
}

// FuzzFormatStable formats whatever parses cleanly and requires the output
// to be a fixed point. Malformed-tree errors are acceptable, panics are not.
func FuzzFormatStable(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, name string, input []byte) {
		input = clampInput(input)
		path := fuzzName(name)
		opts := format.DefaultOptions()

		res, _, err := format.Source(path, input, opts)
		if err != nil {
			var fe *format.FormatError
			if errors.Is(err, format.ErrSyntax) || errors.As(err, &fe) {
				return
			}
			// ошибки нормализации (битый UTF-16 и т.п.) тоже допустимы
			if _, _, nerr := source.Normalize(input); nerr != nil {
				return
			}
			t.Fatalf("unexpected error: %v", err)
		}
		if err := format.CheckStable(path, res.Text, opts); err != nil {
			t.Fatalf("output is not stable: %v\ninput: %q\noutput: %q", err, input, res.Text)
		}
	})
}
