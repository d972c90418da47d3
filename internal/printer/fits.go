package printer

import "quill/internal/doc"

type fitsCommand struct {
	mode mode
	doc  doc.Doc
	rest bool
}

// fits: пробный проход без вывода: помещается ли next в width колонок.
// После next просматриваются команды rest (в их собственных режимах) до
// первого переноса в expanded-режиме. Считается только ширина.
//
// mustBeFlat: next обязан быть целиком flat (элементы fill), поэтому
// вынужденно expanded группа или жёсткий перенос внутри него: это "не помещается".
func (p *printer) fits(next command, rest []command, width int, mustBeFlat bool) bool {
	restIdx := len(rest)
	cmds := append(p.fitsStack[:0], fitsCommand{mode: next.mode, doc: next.doc})
	defer func() { p.fitsStack = cmds[:0] }()

	for width >= 0 {
		if len(cmds) == 0 {
			if restIdx == 0 {
				return true
			}
			restIdx--
			cmds = append(cmds, fitsCommand{mode: rest[restIdx].mode, doc: rest[restIdx].doc, rest: true})
			continue
		}
		cmd := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch d := cmd.doc.(type) {
		case doc.Text:
			width -= textWidth(d.Value)
		case doc.Verbatim:
			width -= textWidth(d.Text)
		case doc.Space:
			width--
		case doc.Sequence:
			for i := len(d.Parts) - 1; i >= 0; i-- {
				cmds = append(cmds, fitsCommand{mode: cmd.mode, doc: d.Parts[i], rest: cmd.rest})
			}
		case doc.Indented:
			cmds = append(cmds, fitsCommand{mode: cmd.mode, doc: d.Contents, rest: cmd.rest})
		case *doc.Grouped:
			if mustBeFlat && !cmd.rest && p.forced[d] {
				return false
			}
			m := cmd.mode
			if p.forced[d] {
				m = modeBreak
			}
			cmds = append(cmds, fitsCommand{mode: m, doc: d.Contents, rest: cmd.rest})
		case doc.Conditional:
			branch := d.Flat
			if p.conditionalMode(cmd.mode, d) == modeBreak {
				branch = d.Break
			}
			cmds = append(cmds, fitsCommand{mode: cmd.mode, doc: branch, rest: cmd.rest})
		case doc.Fill:
			for i := len(d.Items) - 1; i >= 0; i-- {
				cmds = append(cmds, fitsCommand{mode: cmd.mode, doc: d.Items[i], rest: cmd.rest})
				if i > 0 {
					cmds = append(cmds, fitsCommand{mode: cmd.mode, doc: d.Separator, rest: cmd.rest})
				}
			}
		case doc.Break:
			if d.Mode.IsHard() {
				return !(mustBeFlat && !cmd.rest)
			}
			if cmd.mode == modeBreak {
				return true
			}
			if d.Mode == doc.LineSoftOrSpace {
				width--
			}
		case doc.ForceBreak:
			if mustBeFlat && !cmd.rest {
				return false
			}
		}
	}
	return false
}
