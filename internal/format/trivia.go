package format

import (
	"strings"

	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

const ignoreDirective = "quill-ignore"

// tok prints a token together with the comments attached to it.
func (c *Context) tok(t *token.Token) doc.Doc {
	return c.tokText(t, t.Text)
}

// tokText is tok with the token text replaced (requoted strings).
func (c *Context) tokText(t *token.Token, text string) doc.Doc {
	return doc.Concat(c.leading(t), doc.SourceToken(text, t.Span), c.trailing(t))
}

// commentsOf prints only the comments of a token that is itself dropped.
func (c *Context) commentsOf(t *token.Token) doc.Doc {
	return doc.Concat(c.leading(t), c.trailing(t))
}

func (c *Context) leading(t *token.Token) doc.Doc {
	if t == nil || c.skipLeading[t] {
		return doc.Empty
	}
	return c.leadingComments(t.Leading, false)
}

func (c *Context) trailing(t *token.Token) doc.Doc {
	if t == nil || c.skipTrailing[t] {
		return doc.Empty
	}
	var parts []doc.Doc
	for _, tr := range t.Trailing {
		switch tr.Kind {
		case token.TriviaBlockComment:
			parts = append(parts, doc.SpaceDoc(), c.comment(tr))
		case token.TriviaLineComment:
			// строчный комментарий держит за собой конец строки
			parts = append(parts, doc.Suffix(doc.Concat(doc.SpaceDoc(), c.comment(tr))), doc.BreakParent())
		}
	}
	return doc.Concat(parts...)
}

// leadingComments prints comments from leading trivia, each followed by a
// space (block comment on the same line as what follows), a hard line or a
// blank line as in the source. With dangling set the last comment gets no
// separator.
func (c *Context) leadingComments(trivia []token.Trivia, dangling bool) doc.Doc {
	var parts []doc.Doc
	for i, tr := range trivia {
		if !tr.IsComment() {
			continue
		}
		parts = append(parts, c.comment(tr))
		newlines, more := 0, false
		for _, after := range trivia[i+1:] {
			if after.IsComment() {
				more = true
				break
			}
			newlines += after.Newlines()
		}
		if dangling && !more {
			if tr.Kind == token.TriviaLineComment {
				parts = append(parts, doc.BreakParent())
			}
			break
		}
		switch {
		case newlines >= 2:
			parts = append(parts, doc.EmptyLine())
		case newlines == 1 || tr.Kind == token.TriviaLineComment:
			parts = append(parts, doc.HardLine())
		default:
			parts = append(parts, doc.SpaceDoc())
		}
	}
	return doc.Concat(parts...)
}

func (c *Context) comment(tr token.Trivia) doc.Doc {
	if tr.Kind == token.TriviaLineComment {
		return doc.SourceToken(strings.TrimRight(tr.Text, " \t"), tr.Span)
	}
	return doc.Verbatim{Span: tr.Span, Text: tr.Text}
}

// dangling prints the leading comments of a closing token (or EOF) that
// has nothing left to attach to, separated from preceding content by a
// hard or blank line. The token itself no longer carries them.
func (c *Context) dangling(t *token.Token) doc.Doc {
	if t == nil || c.skipLeading[t] || !hasLeadingComments(t) {
		return doc.Empty
	}
	sep := doc.HardLine()
	if t.LinesBefore() >= 2 {
		sep = doc.EmptyLine()
	}
	return doc.Concat(sep, c.danglingBody(t))
}

// danglingBody is dangling without the separator in front.
func (c *Context) danglingBody(t *token.Token) doc.Doc {
	if t == nil || c.skipLeading[t] {
		return doc.Empty
	}
	c.skipLeading[t] = true
	return c.leadingComments(t.Leading, true)
}

// hoistLeading takes the leading comments of n's first token out of n, so
// the caller can print them before the node's own groups open.
func (c *Context) hoistLeading(n *syntax.Node) doc.Doc {
	t := firstTok(n)
	if t == nil || c.skipLeading[t] {
		return doc.Empty
	}
	d := c.leading(t)
	c.skipLeading[t] = true
	return d
}

// hoistTrailing is hoistLeading for the comments after n's last token.
func (c *Context) hoistTrailing(n *syntax.Node) doc.Doc {
	t := lastTok(n)
	if t == nil || c.skipTrailing[t] {
		return doc.Empty
	}
	d := c.trailing(t)
	c.skipTrailing[t] = true
	return d
}

func hasLeadingComments(t *token.Token) bool {
	for _, tr := range t.Leading {
		if tr.IsComment() {
			return true
		}
	}
	return false
}

// hasComments reports whether any token of n carries a comment.
func hasComments(n *syntax.Node) bool {
	for _, t := range syntax.AllTokens(n) {
		if t.HasComments() {
			return true
		}
	}
	return false
}

// ignored reports a statement or member preceded by a quill-ignore comment.
func (c *Context) ignored(n *syntax.Node) bool {
	if !n.Kind.IsStatement() && n.Kind != syntax.JSONMember && n.Kind != syntax.Property {
		return false
	}
	t := firstTok(n)
	if t == nil {
		return false
	}
	for _, tr := range t.Leading {
		if isIgnoreComment(tr) {
			return true
		}
	}
	return false
}

func isIgnoreComment(tr token.Trivia) bool {
	var body string
	switch tr.Kind {
	case token.TriviaLineComment:
		body = strings.TrimPrefix(tr.Text, "//")
	case token.TriviaBlockComment:
		body = strings.TrimSuffix(strings.TrimPrefix(tr.Text, "/*"), "*/")
	default:
		return false
	}
	return strings.TrimSpace(body) == ignoreDirective
}
