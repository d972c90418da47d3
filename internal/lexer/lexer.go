package lexer

import (
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	lang   source.Language
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
	prev   token.Kind     // последний значимый токен, нужен для различения regex и '/'
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	lang := opts.Language
	if lang == source.LangUnknown {
		lang = file.Language
	}
	if lang == source.LangUnknown {
		lang = source.LangJS
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		lang:   lang,
		prev:   token.Invalid,
	}
}

// Language returns the dialect the lexer scans.
func (lx *Lexer) Language() source.Language { return lx.lang }

// Next возвращает следующий **значимый** токен с уже собранными Leading и Trailing.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look: вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	// 2) collectLeadingTrivia(): набить lx.hold
	lx.collectLeadingTrivia()

	// 3) EOF забирает остаток trivia, иначе комментарии в конце файла потеряются
	if lx.cursor.EOF() {
		lx.done = true
		tok := token.Token{
			Kind:    token.EOF,
			Span:    lx.emptySpan(),
			Leading: lx.takeHold(),
		}
		return tok
	}

	var tok token.Token
	if lx.lang.IsJSON() {
		tok = lx.scanJSON()
	} else {
		tok = lx.scanScript()
	}

	tok.Leading = lx.takeHold()
	tok.Trailing = lx.collectTrailingTrivia()
	lx.prev = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize lexes the whole file; the last token is always EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) scanScript() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch == '\\':
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		// Возможный Unicode идентификатор → scanIdentOrKeyword() разберётся
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	case ch == '`':
		return lx.scanTemplate()
	case ch == '/' && lx.regexAllowed():
		return lx.scanRegex()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) scanJSON() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch), ch == '-', ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump()
	kind := token.Invalid
	switch ch {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	}
	if kind == token.Invalid {
		lx.cursor.Reset(start)
		lx.bumpRune()
	}
	return lx.finish(kind, start)
}

// regexAllowed decides whether '/' starts a regular expression literal.
// После значения ('x', ')', ']', '}', литералы) это деление.
func (lx *Lexer) regexAllowed() bool {
	switch lx.prev {
	case token.Ident, token.NumberLit, token.StringLit, token.TemplateLit, token.RegexLit,
		token.RParen, token.RBracket, token.RBrace,
		token.KwThis, token.KwTrue, token.KwFalse, token.KwNull,
		token.PlusPlus, token.MinusMinus:
		return false
	}
	return true
}

func (lx *Lexer) finish(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+quoteText(tok.Text))
	}
	return tok
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := lx.hold
	lx.hold = nil
	return out
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
