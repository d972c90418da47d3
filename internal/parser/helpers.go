package parser

import (
	"slices"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

type mark int

func (p *Parser) mark() mark        { return mark(p.pos) }
func (p *Parser) reset(m mark)      { p.pos = int(m) }
func (p *Parser) peek() token.Token { return p.peekAt(0) }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance: съедает следующий токен; EOF не съедается.
func (p *Parser) advance() syntax.Element {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	if p.lang == source.LangJSON && !p.warnedComment && tok.HasComments() {
		p.warnedComment = true
		p.warn(diag.SynCommentInJSON, firstComment(tok), "comments are not allowed in strict JSON")
	}
	return syntax.Tok(tok)
}

// eat съедает токен нужного вида.
func (p *Parser) eat(k token.Kind) (syntax.Element, bool) {
	if !p.at(k) {
		return syntax.Element{}, false
	}
	return p.advance(), true
}

// lastSpan: span последнего съеденного токена
func (p *Parser) lastSpan() source.Span {
	if p.pos == 0 {
		return source.Span{File: p.file.ID}
	}
	return p.toks[p.pos-1].Span
}

// diagSpan: для EOF берём позицию сразу после последнего токена
func (p *Parser) diagSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && p.pos > 0 {
		end := p.lastSpan().End
		return source.Span{File: tok.Span.File, Start: end, End: end}
	}
	return tok.Span
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) warn(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevWarning, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

func firstComment(tok token.Token) source.Span {
	for _, tr := range tok.Leading {
		if tr.IsComment() {
			return tr.Span
		}
	}
	for _, tr := range tok.Trailing {
		if tr.IsComment() {
			return tr.Span
		}
	}
	return tok.Span
}
