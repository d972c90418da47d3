package format

import (
	"errors"
	"fmt"
	"strings"

	"quill/internal/diag"
	"quill/internal/doc"
	"quill/internal/parser"
	"quill/internal/printer"
	"quill/internal/source"
	"quill/internal/syntax"
)

// Result is the formatted text and where printed source tokens ended up.
type Result struct {
	Text     string
	Mappings []printer.Mapping
}

// FormatFile formats a parsed tree. The output ends with exactly one
// newline unless the file has no content at all.
func FormatFile(file *source.File, tree *syntax.Node, opts Options) (Result, error) {
	return FormatWith(file, tree, opts, defaultRules)
}

// FormatWith is FormatFile with a custom dispatch table (see Rules).
func FormatWith(file *source.File, tree *syntax.Node, opts Options, rules map[syntax.Kind]Rule) (Result, error) {
	d, err := buildDoc(file, tree, opts, rules)
	if err != nil {
		return Result{}, err
	}
	res := printer.Print(d, opts.PrinterOptions())
	return Result{Text: res.Text, Mappings: res.Mappings}, nil
}

// BuildDoc lays out the tree without printing it.
func BuildDoc(file *source.File, tree *syntax.Node, opts Options) (doc.Doc, error) {
	return buildDoc(file, tree, opts, defaultRules)
}

func buildDoc(file *source.File, tree *syntax.Node, opts Options, rules map[syntax.Kind]Rule) (doc.Doc, error) {
	if file == nil {
		return nil, errors.New("format: nil source file")
	}
	if tree == nil {
		return nil, errors.New("format: nil tree")
	}
	c := newContext(file, tree, opts, rules)
	d, err := c.Node(tree)
	if err != nil {
		return nil, err
	}
	if doc.IsEmpty(d) {
		return doc.Empty, nil
	}
	return doc.Concat(d, doc.HardLine()), nil
}

// Source lexes, parses and formats content in one call. Input with syntax
// errors is refused with ErrSyntax; the diagnostics are returned either way.
func Source(path string, content []byte, opts Options) (Result, *diag.Bag, error) {
	normalized, flags, err := source.Normalize(content)
	if err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.Add(path, normalized, flags|source.FileVirtual))

	bag := diag.NewBag(100)
	parsed := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		return Result{}, bag, fmt.Errorf("%s: %w", path, ErrSyntax)
	}
	res, err := FormatFile(file, parsed.Root, opts)
	if err != nil {
		return Result{}, bag, fmt.Errorf("%s: %w", path, err)
	}
	return res, bag, nil
}

// CheckStable formats already formatted text once more and reports
// ErrUnstable with the first differing line when the output changes.
func CheckStable(path, formatted string, opts Options) error {
	again, _, err := Source(path, []byte(formatted), opts)
	if err != nil {
		return fmt.Errorf("fmt-check: reparse failed: %w", err)
	}
	if again.Text == formatted {
		return nil
	}
	nl := opts.LineEnding.Newline()
	a, b := strings.Split(formatted, nl), strings.Split(again.Text, nl)
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return fmt.Errorf("%s:%d: %w: %q became %q", path, i+1, ErrUnstable, a[i], b[i])
		}
	}
	return fmt.Errorf("%s: %w: line count %d became %d", path, ErrUnstable, len(a), len(b))
}
