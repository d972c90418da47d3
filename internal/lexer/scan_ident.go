package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !lx.scanIdentPart(true) {
		// не идентификатор вовсе: одна руна как Invalid
		lx.cursor.Reset(start)
		lx.bumpRune()
		return lx.finish(token.Invalid, start)
	}
	for lx.scanIdentPart(false) {
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		if !lx.lang.IsJSON() {
			kind = k
		} else if k == token.KwTrue || k == token.KwFalse || k == token.KwNull {
			kind = k
		}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanIdentPart съедает один символ идентификатора (включая \uXXXX escapes).
func (lx *Lexer) scanIdentPart(first bool) bool {
	b := lx.cursor.Peek()
	if lx.cursor.EOF() {
		return false
	}
	if b < utf8RuneSelf {
		if b == '\\' && !lx.lang.IsJSON() {
			return lx.scanUnicodeEscape()
		}
		if (first && isIdentStartByte(b)) || (!first && isIdentContinueByte(b)) {
			lx.cursor.Bump()
			return true
		}
		return false
	}
	r, _ := lx.peekRune()
	if (first && isIdentStartRune(r)) || (!first && isIdentContinueRune(r)) {
		lx.bumpRune()
		return true
	}
	return false
}

// \uXXXX или \u{X...}
func (lx *Lexer) scanUnicodeEscape() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.HasPrefix("\\u") {
		return false
	}
	lx.cursor.BumpN(2)
	ok := false
	if lx.cursor.Eat('{') {
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		ok = n > 0 && lx.cursor.Eat('}')
	} else {
		n := 0
		for n < 4 && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		ok = n == 4
	}
	if !ok {
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape in identifier")
	}
	return true
}
