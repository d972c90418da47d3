package driver

import (
	"fortio.org/safecast"

	"quill/internal/diag"
	"quill/internal/doc"
	"quill/internal/format"
	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/syntax"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *syntax.Node
	Bag     *diag.Bag
}

// Parse loads and parses a file. Statements kept verbatim are reported as
// info diagnostics when noteUnknown is set.
func Parse(filePath string, maxDiagnostics int, noteUnknown bool) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.ParseFile(file, parser.Options{
		Reporter:    diag.BagReporter{Bag: bag},
		MaxErrors:   maxErrors,
		NoteUnknown: noteUnknown,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    result.Root,
		Bag:     bag,
	}, nil
}

// BuildDoc parses a file and lays it out as a document without printing,
// for inspecting the IR. The parse result is returned even when layout
// fails.
func BuildDoc(filePath string, maxDiagnostics int, opts format.Options) (*ParseResult, doc.Doc, error) {
	res, err := Parse(filePath, maxDiagnostics, false)
	if err != nil {
		return nil, nil, err
	}
	if res.Bag.HasErrors() {
		return res, nil, format.ErrSyntax
	}
	d, err := format.BuildDoc(res.File, res.Root, opts)
	if err != nil {
		return res, nil, err
	}
	return res, d, nil
}
