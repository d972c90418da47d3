package parser

import (
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// NoteUnknown reports an info diagnostic for each statement kept verbatim.
	NoteUnknown bool
	// Language overrides detection from the file path.
	Language source.Language
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root     *syntax.Node
	Language source.Language
	Errors   uint
	Bag      *diag.Bag
}

// Parser: состояние парсера на один файл
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	lang source.Language
	opts Options

	warnedComment bool
}

// ParseFile: входная точка для разбора одного файла: лексирует и строит CST.
// Лексические ошибки уходят в тот же Reporter.
func ParseFile(file *source.File, opts Options) Result {
	p := &Parser{file: file, opts: opts}
	counting := &countingReporter{next: opts.Reporter, opts: &p.opts}
	p.opts.Reporter = counting

	lx := lexer.New(file, lexer.Options{Reporter: counting, Language: opts.Language})
	for {
		tok := lx.Next()
		p.toks = append(p.toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	p.lang = lx.Language()

	var root *syntax.Node
	if p.lang.IsJSON() {
		root = p.parseJSONDocument()
	} else {
		root = p.parseModule()
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	} else if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Root:     root,
		Language: p.lang,
		Errors:   p.opts.CurrentErrors,
		Bag:      bag,
	}
}

// countingReporter считает ошибки и обрезает поток после MaxErrors.
type countingReporter struct {
	next diag.Reporter
	opts *Options
}

func (r *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		r.opts.CurrentErrors++
		if r.opts.MaxErrors != 0 && r.opts.CurrentErrors > r.opts.MaxErrors {
			return
		}
	}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
