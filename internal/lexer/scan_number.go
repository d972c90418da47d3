package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanNumber разбирает числовой литерал как есть, не вычисляя значение.
// JS: 0x/0o/0b, разделители '_', экспонента, суффикс BigInt 'n'.
// JSON: необязательный '-' перед числом.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	json := lx.lang.IsJSON()

	if json && lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) && !lx.isNumberAfterDot() {
			return lx.badNumber(start, "expected digits after '-'")
		}
	}

	if !json && lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) | 0x20 {
		case 'x':
			return lx.scanRadix(start, isHex)
		case 'o':
			return lx.scanRadix(start, func(b byte) bool { return b >= '0' && b <= '7' })
		case 'b':
			return lx.scanRadix(start, func(b byte) bool { return b == '0' || b == '1' })
		}
	}

	lx.scanDigits(isDec, !json)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.scanDigits(isDec, !json)
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected exponent digits")
		}
		lx.scanDigits(isDec, !json)
	}
	if !json {
		lx.cursor.Eat('n')
	}
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}
	return lx.finish(token.NumberLit, start)
}

func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool) token.Token {
	lx.cursor.BumpN(2)
	if !digit(lx.cursor.Peek()) {
		return lx.badNumber(start, "expected digits after radix prefix")
	}
	lx.scanDigits(digit, true)
	lx.cursor.Eat('n')
	return lx.finish(token.NumberLit, start)
}

func (lx *Lexer) scanDigits(digit func(byte) bool, separators bool) {
	for {
		b := lx.cursor.Peek()
		if digit(b) || (separators && b == '_' && digit(lx.cursor.PeekAt(1))) {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.finish(token.NumberLit, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
