package format

import (
	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

func formatJSONDocument(c *Context, n *syntax.Node) (doc.Doc, error) {
	var parts []doc.Doc
	var eof *token.Token
	for _, ch := range n.Children {
		if ch.Token != nil {
			eof = ch.Token
			continue
		}
		lead := c.hoistLeading(ch.Node)
		trail := c.hoistTrailing(ch.Node)
		d, err := c.Node(ch.Node)
		if err != nil {
			return nil, err
		}
		if len(parts) > 0 {
			parts = append(parts, doc.SpaceDoc())
		}
		parts = append(parts, lead, d, trail)
	}
	parts = append(parts, c.endOfFile(eof, len(parts) > 0))
	return doc.Concat(parts...), nil
}

// endOfFile prints comments after the last token of the file.
func (c *Context) endOfFile(eof *token.Token, hasContent bool) doc.Doc {
	if eof == nil || !hasLeadingComments(eof) {
		return doc.Empty
	}
	if !hasContent {
		return c.danglingBody(eof)
	}
	return c.dangling(eof)
}

// Объект остаётся раскрытым, если в исходнике первый ключ стоял на новой строке.
func formatJSONObject(c *Context, n *syntax.Node) (doc.Doc, error) {
	return c.list(n, listLayout{
		padded:        true,
		trailingComma: false,
		forceBreak:    firstOnNewLine(n),
	})
}

func formatJSONMember(c *Context, n *syntax.Node) (doc.Doc, error) {
	key, err := c.nodeDoc(n, 0, "property name")
	if err != nil {
		return nil, err
	}
	colon, err := c.token(n, token.Colon, "':'")
	if err != nil {
		return nil, err
	}
	value, err := c.nodeDoc(n, 1, "value")
	if err != nil {
		return nil, err
	}
	return doc.Concat(key, c.tok(colon), doc.SpaceDoc(), value), nil
}

// Массив чисел заполняется как абзац; массив из нескольких непустых объектов
// (или массивов) всегда по одному элементу на строку.
func formatJSONArray(c *Context, n *syntax.Node) (doc.Doc, error) {
	_, _, items := splitList(n)
	return c.list(n, listLayout{
		fill:       len(items) > 1 && allKind(items, syntax.JSONNumber),
		forceBreak: concisePrintable(items, syntax.JSONObject, syntax.JSONArray),
	})
}

// formatToken prints a node made of a single token as written.
func formatToken(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	if len(toks) != 1 || len(n.Children) != 1 {
		return nil, malformed(n, "expected a single token")
	}
	return c.tok(toks[0]), nil
}

func allKind(items []listItem, kind syntax.Kind) bool {
	for _, it := range items {
		if it.node.Kind != kind {
			return false
		}
	}
	return true
}

// concisePrintable: больше одного элемента, все непустые объекты одного
// вида или все массивы длиннее одного элемента.
func concisePrintable(items []listItem, object, array syntax.Kind) bool {
	if len(items) < 2 {
		return false
	}
	kind := items[0].node.Kind
	if kind != object && kind != array {
		return false
	}
	for _, it := range items {
		if it.node.Kind != kind {
			return false
		}
		_, _, inner := splitList(it.node)
		if kind == object && len(inner) == 0 || kind == array && len(inner) < 2 {
			return false
		}
	}
	return true
}
