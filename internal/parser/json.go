package parser

import (
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

// parseJSONDocument: значение и EOF. Всё лишнее уходит в Bogus.
func (p *Parser) parseJSONDocument() *syntax.Node {
	doc := syntax.New(syntax.JSONDocument)
	if p.at(token.EOF) {
		p.err(diag.SynExpectValue, p.diagSpan(), "expected a JSON value")
	} else {
		doc.Append(syntax.Sub(p.parseJSONValue()))
	}
	if !p.at(token.EOF) {
		p.err(diag.SynTrailingContent, p.peek().Span, "unexpected content after the JSON value")
		bogus := syntax.New(syntax.Bogus)
		for !p.at(token.EOF) {
			bogus.Append(p.advance())
		}
		doc.Append(syntax.Sub(bogus))
	}
	doc.Append(p.advance())
	return doc
}

func (p *Parser) parseJSONValue() *syntax.Node {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseJSONObject()
	case token.LBracket:
		return p.parseJSONArray()
	case token.StringLit:
		return syntax.New(syntax.JSONString, p.advance())
	case token.NumberLit:
		return syntax.New(syntax.JSONNumber, p.advance())
	case token.KwTrue, token.KwFalse, token.KwNull:
		return syntax.New(syntax.JSONKeyword, p.advance())
	}
	p.err(diag.SynExpectValue, p.diagSpan(), "expected a JSON value")
	return p.bogusJSON()
}

// bogusJSON съедает один токен, если он не структурный, иначе возвращает пустой Bogus.
func (p *Parser) bogusJSON() *syntax.Node {
	bogus := syntax.New(syntax.Bogus)
	if !p.atOr(token.EOF, token.RBrace, token.RBracket, token.Comma, token.Colon) {
		bogus.Append(p.advance())
	} else {
		sp := p.diagSpan()
		bogus.Span = source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
	}
	return bogus
}

func (p *Parser) parseJSONObject() *syntax.Node {
	obj := syntax.New(syntax.JSONObject, p.advance())
	open := obj.Span
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedDelimiter, open, "unclosed '{'")
			return obj
		}
		before := p.pos
		obj.Append(syntax.Sub(p.parseJSONMember()))
		if comma, ok := p.eat(token.Comma); ok {
			obj.Append(comma)
			if p.at(token.RBrace) && p.lang == source.LangJSON {
				p.err(diag.SynTrailingComma, comma.Token.Span, "trailing comma is not allowed in JSON")
			}
			continue
		}
		if !p.atOr(token.RBrace, token.EOF) {
			p.err(diag.SynUnexpectedToken, p.peek().Span, "expected ',' or '}' after object member")
			if p.pos == before || p.atOr(token.RBracket, token.Colon) {
				obj.Append(syntax.Sub(syntax.New(syntax.Bogus, p.advance())))
			}
		}
	}
	obj.Append(p.advance())
	return obj
}

func (p *Parser) parseJSONMember() *syntax.Node {
	member := syntax.New(syntax.JSONMember)
	if p.at(token.StringLit) {
		member.Append(syntax.Sub(syntax.New(syntax.JSONString, p.advance())))
	} else {
		p.err(diag.SynExpectPropertyKey, p.diagSpan(), "expected a string property name")
		member.Append(syntax.Sub(p.bogusJSON()))
	}
	colon, ok := p.eat(token.Colon)
	if !ok {
		p.err(diag.SynExpectColon, p.diagSpan(), "expected ':' after property name")
		if p.atOr(token.Comma, token.RBrace, token.EOF) {
			return member
		}
	} else {
		member.Append(colon)
	}
	member.Append(syntax.Sub(p.parseJSONValue()))
	return member
}

func (p *Parser) parseJSONArray() *syntax.Node {
	arr := syntax.New(syntax.JSONArray, p.advance())
	open := arr.Span
	for !p.at(token.RBracket) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedDelimiter, open, "unclosed '['")
			return arr
		}
		before := p.pos
		arr.Append(syntax.Sub(p.parseJSONValue()))
		if comma, ok := p.eat(token.Comma); ok {
			arr.Append(comma)
			if p.at(token.RBracket) && p.lang == source.LangJSON {
				p.err(diag.SynTrailingComma, comma.Token.Span, "trailing comma is not allowed in JSON")
			}
			continue
		}
		if !p.atOr(token.RBracket, token.EOF) {
			p.err(diag.SynUnexpectedToken, p.peek().Span, "expected ',' or ']' after array element")
			if p.pos == before || p.atOr(token.RBrace, token.Colon) {
				arr.Append(syntax.Sub(syntax.New(syntax.Bogus, p.advance())))
			}
		}
	}
	arr.Append(p.advance())
	return arr
}
