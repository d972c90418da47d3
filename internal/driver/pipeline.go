package driver

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"quill/internal/diag"
	"quill/internal/doc"
	"quill/internal/format"
	"quill/internal/observ"
	"quill/internal/parser"
	"quill/internal/printer"
	"quill/internal/source"
)

const defaultMaxDiagnostics = 256

// fileOutput is what the pipeline produced for one file.
type fileOutput struct {
	formatted []byte
	fileSet   *source.FileSet
	bag       *diag.Bag
	timing    observ.Report
}

// formatContent runs parse, build-ir and print on raw file bytes, timing
// each phase. Input with syntax errors is refused with format.ErrSyntax.
func formatContent(path string, raw []byte, opts format.Options, maxDiagnostics int, verify bool) (fileOutput, error) {
	timer := observ.NewTimer()
	var out fileOutput

	content, flags, err := source.Normalize(raw)
	if err != nil {
		return out, fmt.Errorf("%s: %w", path, err)
	}
	out.fileSet = source.NewFileSet()
	file := out.fileSet.Get(out.fileSet.Add(path, content, flags))

	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	out.bag = diag.NewBag(maxDiagnostics)
	maxErrors, convErr := safecast.Conv[uint](out.bag.Cap())
	if convErr != nil {
		maxErrors = 0
	}

	var parsed parser.Result
	_ = timer.Track(observ.PhaseParse, func() error {
		parsed = parser.ParseFile(file, parser.Options{
			Reporter:  diag.BagReporter{Bag: out.bag},
			MaxErrors: maxErrors,
		})
		return nil
	})
	if out.bag.HasErrors() {
		out.timing = timer.Report()
		return out, fmt.Errorf("%s: %w", path, format.ErrSyntax)
	}

	var d doc.Doc
	err = timer.Track(observ.PhaseBuildIR, func() (err error) {
		d, err = format.BuildDoc(file, parsed.Root, opts)
		return err
	})
	if err != nil {
		out.bag.Add(formatDiagnostic(err))
		out.timing = timer.Report()
		return out, fmt.Errorf("%s: %w", path, err)
	}

	var res printer.Result
	_ = timer.Track(observ.PhasePrint, func() error {
		res = printer.Print(d, opts.PrinterOptions())
		return nil
	})
	out.formatted = []byte(res.Text)

	if verify {
		err = timer.Track(observ.PhaseVerify, func() error {
			return format.CheckStable(path, res.Text, opts)
		})
		if err != nil {
			out.timing = timer.Report()
			return out, err
		}
	}
	out.timing = timer.Report()
	return out, nil
}

// formatDiagnostic turns a rule failure into a diagnostic at the node the
// rule could not lay out.
func formatDiagnostic(err error) diag.Diagnostic {
	var fe *format.FormatError
	if errors.As(err, &fe) {
		return diag.NewError(diag.FmtMalformedTree, fe.Span, fe.Reason)
	}
	return diag.NewError(diag.FmtInternal, source.Span{}, err.Error())
}
