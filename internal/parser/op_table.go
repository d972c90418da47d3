package parser

import "quill/internal/token"

// binaryPrec возвращает приоритет бинарного оператора (0: не бинарный)
// и признак правой ассоциативности.
func binaryPrec(k token.Kind) (prec int, rightAssoc bool) {
	switch k {
	case token.QuestionQuestion:
		return 1, false
	case token.OrOr:
		return 2, false
	case token.AndAnd:
		return 3, false
	case token.Pipe:
		return 4, false
	case token.Caret:
		return 5, false
	case token.Amp:
		return 6, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return 7, false
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof, token.KwIn:
		return 8, false
	case token.Shl, token.Shr, token.UShr:
		return 9, false
	case token.Plus, token.Minus:
		return 10, false
	case token.Star, token.Slash, token.Percent:
		return 11, false
	case token.StarStar:
		return 12, true
	}
	return 0, false
}

// BinaryPrec exposes the operator table to the formatter, which flattens
// chains of equal precedence.
func BinaryPrec(k token.Kind) int {
	prec, _ := binaryPrec(k)
	return prec
}

func isLogical(k token.Kind) bool {
	return k == token.AndAnd || k == token.OrOr || k == token.QuestionQuestion
}

// слова, с которых начинаются конструкции, которые мы не моделируем;
// в позиции выражения они тоже не идентификаторы
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "continue": true,
	"debugger": true, "default": true, "do": true, "enum": true, "export": true,
	"extends": true, "finally": true, "for": true, "import": true, "super": true,
	"switch": true, "try": true, "while": true, "with": true, "yield": true,
	"interface": true, "declare": true, "namespace": true, "abstract": true,
}

// начала операторов, перед которыми нераспознанный оператор точно закончился
var statementStarters = map[string]bool{
	"break": true, "class": true, "continue": true, "debugger": true, "do": true,
	"export": true, "for": true, "import": true, "switch": true, "try": true,
	"while": true, "interface": true, "type": true, "enum": true, "declare": true,
	"namespace": true, "abstract": true,
}

func isReserved(tok token.Token) bool {
	return tok.Kind == token.Ident && reservedWords[tok.Text]
}
