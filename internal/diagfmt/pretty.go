package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
	"quill/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	gutter, bold    *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		gutter: color.New(color.FgBlue),
		bold:   color.New(color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.gutter, p.bold, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид, по порядку
// bag.Items() (сортировка на вызывающем):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста с подчёркиванием ^~~~ по Span и Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	base := fs.BaseDir()
	for _, d := range bag.Items() {
		sev := pal.severity(d.Severity)
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(f, opts.PathMode, base), start.Line, start.Col,
			sev.Sprint(d.Severity.String()), d.Code.ID(), pal.bold.Sprint(d.Message))
		if f != nil {
			writeSnippet(w, f, d.Primary, opts.Context, sev, pal)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			if nf == nil || (n.Span == source.Span{}) {
				fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), n.Msg)
				continue
			}
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
				displayPath(nf, opts.PathMode, base), ns.Line, ns.Col, n.Msg)
		}
	}
}

// writeSnippet prints the primary line with `context` lines around it and
// underlines the span on the primary line.
func writeSnippet(w io.Writer, f *source.File, span source.Span, context int, sev *color.Color, pal palette) {
	if len(f.Content) == 0 {
		return
	}
	start, end := f.Resolve(span)
	line := start.Line
	first := max(1, int(line)-max(context, 0))
	last := int(line) + max(context, 0)
	lineCount := len(f.LineIdx) + 1
	last = min(last, lineCount)

	numWidth := len(fmt.Sprint(last))
	for n := first; n <= last; n++ {
		text := strings.TrimRight(f.GetLine(uint32(n)), "\r")
		if n != int(line) && strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", numWidth, n), expandTabs(text))
		if n != int(line) {
			continue
		}
		from := int(start.Col) - 1
		to := len(text)
		if end.Line == start.Line {
			to = int(end.Col) - 1
		}
		from = min(max(from, 0), len(text))
		to = min(max(to, from), len(text))
		pad := runewidth.StringWidth(expandTabs(text[:from]))
		width := max(1, runewidth.StringWidth(expandTabs(text[from:to])))
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%*s |", numWidth, ""), strings.Repeat(" ", pad), sev.Sprint(marker))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
