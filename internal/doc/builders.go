package doc

import (
	"hash/fnv"

	"quill/internal/source"
)

// Token is a plain text run.
func Token(text string) Doc {
	return Text{Value: text}
}

// SourceToken is a text run that maps back to a source span.
func SourceToken(text string, span source.Span) Doc {
	return Text{Value: text, Source: span, Mapped: true}
}

func SpaceDoc() Doc { return Space{} }

// SoftLine breaks when expanded and prints nothing when flat.
func SoftLine() Doc { return Break{Mode: LineSoft} }

// Line breaks when expanded and prints a space when flat.
func Line() Doc { return Break{Mode: LineSoftOrSpace} }

func HardLine() Doc { return Break{Mode: LineHard} }

func EmptyLine() Doc { return Break{Mode: LineEmpty} }

// BreakParent expands every group around it without printing anything.
func BreakParent() Doc { return ForceBreak{} }

// Concat joins docs in sequence, splicing nested Concat and dropping empties.
func Concat(parts ...Doc) Doc {
	out := make([]Doc, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case nil, empty:
		case Sequence:
			out = append(out, v.Parts...)
		default:
			out = append(out, p)
		}
	}
	switch len(out) {
	case 0:
		return Empty
	case 1:
		return out[0]
	}
	return Sequence{Parts: out}
}

// Join puts sep between consecutive items. Empty items are kept so that
// positions line up with the caller's list.
func Join(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Empty
	}
	parts := make([]Doc, 0, 2*len(items)-1)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, it)
	}
	return Concat(parts...)
}

func Group(d Doc) Doc {
	return &Grouped{Contents: d}
}

func GroupWithID(id GroupID, d Doc) Doc {
	return &Grouped{Contents: d, ID: id}
}

func Indent(d Doc) Doc {
	if IsEmpty(d) {
		return Empty
	}
	return Indented{Contents: d}
}

// IfGroupBreaks shows d only when the group resolves expanded; a non-zero id
// selects that group instead of the enclosing one.
func IfGroupBreaks(d Doc, id ...GroupID) Doc {
	return IfBreak(d, Empty, id...)
}

// IfGroupFits shows d only when the group resolves flat.
func IfGroupFits(d Doc, id ...GroupID) Doc {
	return IfBreak(Empty, d, id...)
}

func IfBreak(breakDoc, flatDoc Doc, id ...GroupID) Doc {
	var gid GroupID
	if len(id) > 0 {
		gid = id[0]
	}
	return Conditional{Break: breakDoc, Flat: flatDoc, Group: gid}
}

// FillOf builds a fill list. Empty items are dropped; a single item is
// returned as is.
func FillOf(sep Doc, items []Doc) Doc {
	kept := make([]Doc, 0, len(items))
	for _, it := range items {
		if !IsEmpty(it) {
			kept = append(kept, it)
		}
	}
	switch len(kept) {
	case 0:
		return Empty
	case 1:
		return kept[0]
	}
	return Fill{Separator: sep, Items: kept}
}

// Suffix defers d to the end of the current line.
func Suffix(d Doc) Doc {
	if IsEmpty(d) {
		return Empty
	}
	return LineSuffix{Contents: d}
}

// VerbatimOf copies span out of the file unchanged.
func VerbatimOf(file *source.File, span source.Span) Doc {
	return Verbatim{Span: span, Text: file.Text(span)}
}

// IDFor derives a stable group id from a node span and a salt, so that the
// same node always yields the same id within a format call.
func IDFor(span source.Span, salt string) GroupID {
	h := fnv.New32a()
	var buf [12]byte
	putU32(buf[0:4], uint32(span.File))
	putU32(buf[4:8], span.Start)
	putU32(buf[8:12], span.End)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(salt))
	return GroupID(h.Sum32() | 1)
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
