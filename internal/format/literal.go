package format

import (
	"strings"

	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

func formatLiteral(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	if len(toks) != 1 {
		return nil, malformed(n, "expected a single token")
	}
	if toks[0].Kind == token.StringLit {
		return c.stringTok(toks[0]), nil
	}
	return c.tok(toks[0]), nil
}

// stringTok prints a script string literal in the configured quotes.
// JSON strings are never touched.
func (c *Context) stringTok(t *token.Token) doc.Doc {
	if c.json {
		return c.tok(t)
	}
	return c.tokText(t, requote(t.Text, c.opts.QuoteStyle))
}

// requote switches the quotes of a string literal when the body stays the
// same: it must not contain the new quote nor an escaped old one.
func requote(raw string, style QuoteStyle) string {
	if len(raw) < 2 {
		return raw
	}
	old, want := raw[0], style.char()
	if old == want || (old != '"' && old != '\'') || raw[len(raw)-1] != old {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if strings.IndexByte(body, want) >= 0 || strings.Contains(body, `\`+string(old)) {
		return raw
	}
	return string(want) + body + string(want)
}
