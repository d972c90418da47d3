package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности; если не закрыта: репорт и обрезаем на EOF)
// - #! в самом начале скрипта -> TriviaLineComment
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	if lx.cursor.Off == 0 && !lx.lang.IsJSON() && lx.cursor.HasPrefix("#!") {
		lx.scanLineComment()
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if isHorizontalSpace(b) {
			lx.scanSpaces()
			continue
		}

		// newlines (коалесцируем подряд)
		if b == '\n' {
			start := lx.cursor.Mark()
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.push(token.TriviaNewline, start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold(true) {
			continue
		}

		// нет больше trivia
		break
	}
}

// collectTrailingTrivia забирает пробелы и комментарии до конца текущей строки.
// Перевод строки остаётся следующему токену; блочный комментарий, который
// сам переносит строку, тоже.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	saved := lx.hold
	lx.hold = nil
	defer func() { lx.hold = saved }()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isHorizontalSpace(b) {
			lx.scanSpaces()
			continue
		}
		if b == '/' && lx.scanCommentIntoHold(false) {
			if last := lx.hold[len(lx.hold)-1]; last.Kind == token.TriviaLineComment {
				break
			}
			continue
		}
		break
	}
	return lx.hold
}

func (lx *Lexer) scanSpaces() {
	start := lx.cursor.Mark()
	for isHorizontalSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	lx.push(token.TriviaSpace, start)
}

func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.push(token.TriviaLineComment, start)
}

// //... , /*...*/
// multiline=false отказывается от блочного комментария с переводом строки.
func (lx *Lexer) scanCommentIntoHold(multiline bool) bool {
	start := lx.cursor.Mark()
	switch lx.cursor.PeekAt(1) {
	case '/':
		lx.scanLineComment()
		return true

	case '*':
		lx.cursor.BumpN(2)
		closed, sawNewline := false, false
		for !lx.cursor.EOF() {
			if lx.cursor.HasPrefix("*/") {
				lx.cursor.BumpN(2)
				closed = true
				break
			}
			if lx.cursor.Bump() == '\n' {
				sawNewline = true
			}
		}
		if sawNewline && !multiline {
			lx.cursor.Reset(start)
			return false
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.push(token.TriviaBlockComment, start)
		return true
	}
	return false
}

func (lx *Lexer) push(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
