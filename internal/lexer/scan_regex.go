package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanRegex: /body/flags. Внутри класса [...] '/' не закрывает литерал.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	inClass := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			tok := lx.finish(token.RegexLit, start)
			lx.errLex(diag.LexUnterminatedRegex, tok.Span, "unterminated regular expression literal")
			return tok
		}
		b := lx.cursor.Peek()
		switch {
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() != '\n' {
				lx.bumpRune()
			}
			continue
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.cursor.Bump()
			for isIdentContinueByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.finish(token.RegexLit, start)
		}
		lx.bumpRune()
	}
}
