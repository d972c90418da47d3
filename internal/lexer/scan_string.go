package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanString сканирует "..." и '...'. Escape-последовательности не
// декодируются: форматтер печатает литерал как написан.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for {
		if lx.cursor.EOF() {
			return lx.unterminatedString(start)
		}
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			tok := lx.finish(token.StringLit, start)
			if quote == '\'' && lx.lang.IsJSON() {
				lx.errLex(diag.SynSingleQuoteJSON, tok.Span, "JSON strings must use double quotes")
			}
			return tok
		case b == '\n':
			return lx.unterminatedString(start)
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return lx.unterminatedString(start)
			}
			if lx.lang.IsJSON() && !isJSONEscape(lx.cursor.Peek()) {
				escStart := Mark(lx.cursor.Off - 1)
				lx.bumpRune()
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(escStart), "invalid escape sequence in JSON string")
				continue
			}
			// в JS '\' + перевод строки: продолжение строки
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
}

func (lx *Lexer) unterminatedString(start Mark) token.Token {
	tok := lx.finish(token.StringLit, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

func isJSONEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// scanTemplate забирает шаблонную строку целиком одним токеном, включая
// подстановки ${...} с вложенными строками, шаблонами и комментариями.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // `
	if !lx.skipTemplateBody() {
		tok := lx.finish(token.TemplateLit, start)
		lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
		return tok
	}
	return lx.finish(token.TemplateLit, start)
}

// skipTemplateBody идёт до закрывающей '`'. Стек вместо рекурсии: каждый
// уровень: либо тело шаблона, либо выражение подстановки с глубиной скобок.
func (lx *Lexer) skipTemplateBody() bool {
	type frame struct {
		inExpr bool
		depth  int
	}
	stack := []frame{{}}
	for !lx.cursor.EOF() {
		top := &stack[len(stack)-1]
		b := lx.cursor.Peek()
		if !top.inExpr {
			switch {
			case b == '\\':
				lx.cursor.Bump()
				lx.bumpRune()
			case b == '`':
				lx.cursor.Bump()
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return true
				}
			case b == '$' && lx.cursor.PeekAt(1) == '{':
				lx.cursor.BumpN(2)
				stack = append(stack, frame{inExpr: true})
			default:
				lx.bumpRune()
			}
			continue
		}
		switch {
		case b == '{':
			top.depth++
			lx.cursor.Bump()
		case b == '}':
			lx.cursor.Bump()
			if top.depth == 0 {
				stack = stack[:len(stack)-1]
			} else {
				top.depth--
			}
		case b == '`':
			lx.cursor.Bump()
			stack = append(stack, frame{})
		case b == '"' || b == '\'':
			lx.skipQuoted()
		case b == '/' && (lx.cursor.PeekAt(1) == '/' || lx.cursor.PeekAt(1) == '*'):
			saved := lx.hold
			lx.hold = nil
			lx.scanCommentIntoHold(true)
			lx.hold = saved
		default:
			lx.bumpRune()
		}
	}
	return false
}

// skipQuoted пропускает строку внутри подстановки без диагностик.
func (lx *Lexer) skipQuoted() {
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			return
		}
		lx.cursor.Bump()
		if b == '\\' {
			lx.bumpRune()
			continue
		}
		if b == quote {
			return
		}
	}
}
