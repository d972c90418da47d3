package printer

import (
	"quill/internal/doc"
	"quill/internal/source"
)

// Mapping ties a printed source token or verbatim span to its position in
// the output: Result.Text[Start:End].
type Mapping struct {
	Original source.Span
	Start    int
	End      int
}

type Result struct {
	Text     string
	Mappings []Mapping
}

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

func (m mode) String() string {
	if m == modeFlat {
		return "flat"
	}
	return "break"
}

// command: элемент рабочего стека: документ, уровень отступа и режим
// ближайшей объемлющей группы.
type command struct {
	indent int
	mode   mode
	doc    doc.Doc
}

type printer struct {
	opt        Options
	w          *writer
	stack      []command
	suffixes   []command
	forced     map[*doc.Grouped]bool
	groupModes map[doc.GroupID]mode
	fitsStack  []fitsCommand
}

// Print renders d. Identical documents and options give identical output.
func Print(d doc.Doc, opt Options) Result {
	opt = opt.withDefaults()
	p := &printer{
		opt:        opt,
		w:          newWriter(opt, 1024),
		forced:     propagateBreaks(d),
		groupModes: make(map[doc.GroupID]mode),
	}
	p.stack = append(p.stack, command{indent: 0, mode: modeBreak, doc: d})
	p.run()
	p.assertf(len(p.suffixes) == 0, "line suffixes left unflushed")
	return Result{Text: p.w.String(), Mappings: p.w.mappings}
}

func (p *printer) push(cmds ...command) {
	p.stack = append(p.stack, cmds...)
}

func (p *printer) run() {
	for {
		if len(p.stack) == 0 {
			if len(p.suffixes) == 0 {
				return
			}
			p.flushSuffixes()
			continue
		}
		cmd := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]

		switch d := cmd.doc.(type) {
		case doc.Text:
			p.w.WriteText(d.Value, d.Source, d.Mapped)
		case doc.Verbatim:
			p.w.WriteText(d.Text, d.Span, true)
		case doc.Space:
			p.w.Space()
		case doc.Sequence:
			for i := len(d.Parts) - 1; i >= 0; i-- {
				p.push(command{indent: cmd.indent, mode: cmd.mode, doc: d.Parts[i]})
			}
		case doc.Indented:
			p.push(command{indent: cmd.indent + 1, mode: cmd.mode, doc: d.Contents})
		case *doc.Grouped:
			p.printGroup(cmd, d)
		case doc.Conditional:
			if p.conditionalMode(cmd.mode, d) == modeBreak {
				p.push(command{indent: cmd.indent, mode: cmd.mode, doc: d.Break})
			} else {
				p.push(command{indent: cmd.indent, mode: cmd.mode, doc: d.Flat})
			}
		case doc.LineSuffix:
			p.suffixes = append(p.suffixes, command{indent: cmd.indent, mode: cmd.mode, doc: d.Contents})
		case doc.Break:
			p.printBreak(cmd, d)
		case doc.Fill:
			p.printFill(cmd, d)
		case doc.ForceBreak:
			p.assertf(cmd.mode == modeBreak, "break-parent inside a flat group")
		}
	}
}

func (p *printer) conditionalMode(current mode, c doc.Conditional) mode {
	if c.Group == 0 {
		return current
	}
	if m, ok := p.groupModes[c.Group]; ok {
		return m
	}
	// группа ещё не напечатана
	return modeFlat
}

// printGroup решает flat/expanded один раз для группы. Группа с жёстким
// переносом внутри всегда expanded; внутри flat-группы всё flat; иначе :
// пробный проход fits.
func (p *printer) printGroup(cmd command, g *doc.Grouped) {
	m := modeBreak
	switch {
	case p.forced[g]:
		p.assertf(cmd.mode == modeBreak, "group with a hard break nested in a flat group")
	case cmd.mode == modeFlat:
		m = modeFlat
	default:
		next := command{indent: cmd.indent, mode: modeFlat, doc: g.Contents}
		if p.fits(next, p.stack, p.opt.PrintWidth-p.w.Col(), false) {
			m = modeFlat
		}
	}
	if g.ID != 0 {
		p.groupModes[g.ID] = m
	}
	p.push(command{indent: cmd.indent, mode: m, doc: g.Contents})
}

func (p *printer) printBreak(cmd command, b doc.Break) {
	if cmd.mode == modeFlat && !b.Mode.IsHard() {
		if b.Mode == doc.LineSoftOrSpace {
			p.w.Space()
		}
		return
	}
	p.assertf(cmd.mode == modeBreak, "%s break rendered in flat mode", b.Mode)
	if len(p.suffixes) > 0 {
		// сначала отложенные хвосты, потом сам перенос
		p.push(cmd)
		p.flushSuffixes()
		return
	}
	p.w.Newline(cmd.indent, b.Mode == doc.LineEmpty)
}

func (p *printer) flushSuffixes() {
	for i := len(p.suffixes) - 1; i >= 0; i-- {
		p.push(p.suffixes[i])
	}
	p.suffixes = p.suffixes[:0]
}

// printFill: каждый элемент проверяется отдельно; разделитель ломается,
// только если пара [элемент, разделитель, следующий] не помещается.
func (p *printer) printFill(cmd command, f doc.Fill) {
	if len(f.Items) == 0 {
		return
	}
	rem := p.opt.PrintWidth - p.w.Col()
	content := f.Items[0]
	contentFlat := command{indent: cmd.indent, mode: modeFlat, doc: content}
	contentBreak := command{indent: cmd.indent, mode: modeBreak, doc: content}
	contentFits := p.fits(contentFlat, nil, rem, true)
	if len(f.Items) == 1 {
		if contentFits {
			p.push(contentFlat)
		} else {
			p.push(contentBreak)
		}
		return
	}

	sepFlat := command{indent: cmd.indent, mode: modeFlat, doc: f.Separator}
	sepBreak := command{indent: cmd.indent, mode: modeBreak, doc: f.Separator}
	remaining := command{indent: cmd.indent, mode: cmd.mode, doc: doc.Fill{Separator: f.Separator, Items: f.Items[1:]}}
	pair := command{indent: cmd.indent, mode: modeFlat, doc: doc.Sequence{Parts: []doc.Doc{content, f.Separator, f.Items[1]}}}

	switch {
	case p.fits(pair, nil, rem, true):
		p.push(remaining, sepFlat, contentFlat)
	case contentFits:
		p.push(remaining, sepBreak, contentFlat)
	default:
		p.push(remaining, sepBreak, contentBreak)
	}
}
