package format

import (
	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

// listLayout describes a bracketed comma separated list.
type listLayout struct {
	padded        bool // пробелы внутри скобок в одну строку: { a }
	trailingComma bool // запятая после последнего элемента, если список раскрыт
	forceBreak    bool
	fill          bool
	group         doc.GroupID // группа самого списка, к ней привязана висячая запятая
}

type listItem struct {
	node  *syntax.Node
	comma *token.Token
}

// splitList разбирает детей узла-списка: открывающий токен, элементы с их
// запятыми и закрывающий токен (nil, если список не закрыт).
func splitList(n *syntax.Node) (open, close *token.Token, items []listItem) {
	for i, ch := range n.Children {
		switch {
		case ch.Node != nil:
			items = append(items, listItem{node: ch.Node})
		case i == 0:
			open = ch.Token
		case ch.Token.Kind == token.Comma && len(items) > 0 && items[len(items)-1].comma == nil:
			items[len(items)-1].comma = ch.Token
		default:
			close = ch.Token
		}
	}
	return open, close, items
}

func (c *Context) list(n *syntax.Node, layout listLayout) (doc.Doc, error) {
	open, close, items := splitList(n)
	if open == nil || close == nil {
		return nil, malformed(n, "unclosed list")
	}
	if len(items) == 0 {
		return c.emptyList(open, close), nil
	}
	layout.group = doc.IDFor(n.Span, "list")
	docs, blank, err := c.listItems(items, layout)
	if err != nil {
		return nil, err
	}

	line := doc.SoftLine()
	if layout.padded {
		line = doc.Line()
	}
	var body doc.Doc
	if layout.fill {
		body = doc.FillOf(doc.Line(), docs)
	} else {
		parts := make([]doc.Doc, 0, 2*len(docs))
		for i, d := range docs {
			if i > 0 {
				if blank[i] {
					parts = append(parts, doc.EmptyLine())
				} else {
					parts = append(parts, doc.Line())
				}
			}
			parts = append(parts, d)
		}
		body = doc.Concat(parts...)
	}
	closing := c.dangling(close)
	contents := doc.Concat(
		c.tok(open),
		doc.Indent(doc.Concat(line, body, closing)),
		line,
		c.tok(close),
	)
	if layout.forceBreak {
		contents = doc.Concat(doc.BreakParent(), contents)
	}
	return doc.GroupWithID(layout.group, contents), nil
}

// listItems lays out each element with its comma and the comments around
// it. A comma after the last element is replaced by the layout's trailing
// comma, except after a hole where it carries meaning.
func (c *Context) listItems(items []listItem, layout listLayout) ([]doc.Doc, []bool, error) {
	docs := make([]doc.Doc, len(items))
	blank := make([]bool, len(items))
	for i, it := range items {
		if t := firstTok(it.node); t != nil && i > 0 {
			blank[i] = t.LinesBefore() >= 2
		}
		lead := c.hoistLeading(it.node)
		trail := c.hoistTrailing(it.node)
		d, err := c.Node(it.node)
		if err != nil {
			return nil, nil, err
		}
		var comma doc.Doc
		last := i == len(items)-1
		switch {
		case !last && it.comma != nil:
			comma = c.tok(it.comma)
		case !last:
			comma = doc.Token(",")
		case it.comma != nil && it.node.Kind == syntax.Hole:
			comma = c.tok(it.comma)
		case it.comma != nil:
			comma = doc.Concat(c.trailingComma(layout), c.commentsOf(it.comma))
		default:
			comma = c.trailingComma(layout)
		}
		docs[i] = doc.Concat(lead, d, comma, trail)
	}
	return docs, blank, nil
}

// trailingComma follows the list's own group, not the innermost one: in a
// fill the last item is laid out flat even when the list is expanded.
func (c *Context) trailingComma(layout listLayout) doc.Doc {
	if !layout.trailingComma {
		return doc.Empty
	}
	return doc.IfGroupBreaks(doc.Token(","), layout.group)
}

// emptyList prints "{}" or "[]"; comments inside go on their own lines.
func (c *Context) emptyList(open, close *token.Token) doc.Doc {
	if !hasLeadingComments(close) {
		return doc.Concat(c.tok(open), c.tok(close))
	}
	inner := c.danglingBody(close)
	return doc.Concat(c.tok(open), doc.Indent(doc.Concat(doc.HardLine(), inner)), doc.HardLine(), c.tok(close))
}

// firstOnNewLine reports a list whose first element started on a new line
// in the source; objects written that way stay expanded.
func firstOnNewLine(n *syntax.Node) bool {
	_, _, items := splitList(n)
	if len(items) == 0 {
		return false
	}
	t := firstTok(items[0].node)
	return t != nil && t.NewlineBefore()
}
