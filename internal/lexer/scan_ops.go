package lexer

import (
	"quill/internal/token"
)

// операторы в порядке убывания длины: жадно берём самый длинный
var scriptOps = []struct {
	text string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},

	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"**=", token.StarStarAssign},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{">>>", token.UShr},
	{"...", token.DotDotDot},
	{"&&=", token.AndAndAssign},
	{"||=", token.OrOrAssign},
	{"??=", token.QuestionQuestionAssign},

	{"=>", token.FatArrow},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"??", token.QuestionQuestion},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
	{"**", token.StarStar},
	{"<<", token.Shl},
	{">>", token.Shr},
}

var singleOps = [128]token.Kind{
	'{': token.LBrace, '}': token.RBrace,
	'(': token.LParen, ')': token.RParen,
	'[': token.LBracket, ']': token.RBracket,
	';': token.Semicolon, ',': token.Comma, ':': token.Colon, '.': token.Dot,
	'?': token.Question,
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash, '%': token.Percent,
	'&': token.Amp, '|': token.Pipe, '^': token.Caret, '~': token.Tilde, '!': token.Bang,
	'<': token.Lt, '>': token.Gt, '=': token.Assign,
	'@': token.At, '#': token.Hash,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	// "?." не оператор, если за ним цифра: a?.5:b
	if lx.cursor.HasPrefix("?.") && !isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.BumpN(2)
		return lx.finish(token.QuestionDot, start)
	}
	for _, op := range scriptOps {
		if lx.tryOp(op.text) {
			return lx.finish(op.kind, start)
		}
	}

	b := lx.cursor.Peek()
	if b < utf8RuneSelf {
		if k := singleOps[b]; k != token.Invalid {
			lx.cursor.Bump()
			return lx.finish(k, start)
		}
	}
	lx.bumpRune()
	return lx.finish(token.Invalid, start)
}
