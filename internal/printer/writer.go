package printer

import (
	"strings"

	"quill/internal/source"
)

// writer accumulates output. Indentation and separating spaces are written
// lazily, so a break never leaves trailing whitespace behind and blank lines
// stay empty.
type writer struct {
	opt         Options
	buf         strings.Builder
	newline     string
	indentLevel int
	atLineStart bool
	space       bool // отложенный пробел от Space/flat Line
	col         int
	newlines    int // сколько переводов строки подряд выдано с последнего текста
	mappings    []Mapping
}

func newWriter(opt Options, sizeHint int) *writer {
	w := &writer{opt: opt, newline: opt.LineEnding.Newline(), atLineStart: true}
	w.buf.Grow(sizeHint)
	return w
}

func (w *writer) indentWidth(level int) int {
	return level * w.opt.IndentWidth
}

func (w *writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.IndentStyle == IndentTab {
		for range w.indentLevel {
			w.buf.WriteByte('\t')
		}
	} else {
		for range w.indentWidth(w.indentLevel) {
			w.buf.WriteByte(' ')
		}
	}
	w.atLineStart = false
}

// Space запоминает пробел; соседние пробелы схлопываются, в начале строки
// пробел не нужен.
func (w *writer) Space() {
	if w.atLineStart || w.space {
		return
	}
	w.space = true
	w.col++
}

// WriteText выводит атомарный текст. Переводы строк внутри текста выдаются
// в выбранном стиле; ширина считается по тексту целиком.
func (w *writer) WriteText(s string, src source.Span, mapped bool) {
	if s == "" {
		if mapped {
			w.flushPending()
			off := w.buf.Len()
			w.mappings = append(w.mappings, Mapping{Original: src, Start: off, End: off})
		}
		return
	}
	w.flushPending()
	start := w.buf.Len()
	if w.newline != "\n" && strings.Contains(s, "\n") {
		w.buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", w.newline))
	} else {
		w.buf.WriteString(s)
	}
	if mapped {
		w.mappings = append(w.mappings, Mapping{Original: src, Start: start, End: w.buf.Len()})
	}
	w.col += textWidth(s)
	w.newlines = 0
}

func (w *writer) flushPending() {
	w.writeIndent()
	if w.space {
		w.buf.WriteByte(' ')
		w.space = false
	}
}

// Newline выдаёт перевод строки; отложенный пробел отбрасывается.
// blank=true гарантирует ровно одну пустую строку перед следующим текстом.
func (w *writer) Newline(level int, blank bool) {
	w.space = false
	switch {
	case blank && w.buf.Len() == 0:
		// пустые строки в начале файла не нужны
	case blank:
		for w.newlines < 2 {
			w.buf.WriteString(w.newline)
			w.newlines++
		}
	default:
		w.buf.WriteString(w.newline)
		w.newlines++
	}
	w.indentLevel = level
	w.atLineStart = true
	w.col = w.indentWidth(level)
}

// Col: текущая логическая колонка с учётом отложенных отступа и пробела.
func (w *writer) Col() int {
	return w.col
}

func (w *writer) String() string {
	return w.buf.String()
}
