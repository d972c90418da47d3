package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	NumberLit
	StringLit
	TemplateLit
	RegexLit

	KwVar
	KwLet
	KwConst
	KwFunction
	KwReturn
	KwIf
	KwElse
	KwNew
	KwTypeof
	KwVoid
	KwDelete
	KwThrow
	KwTrue
	KwFalse
	KwNull
	KwThis
	KwIn
	KwInstanceof

	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Semicolon
	Comma
	Colon
	Dot
	DotDotDot
	Question
	QuestionDot
	QuestionQuestion
	FatArrow

	Plus
	Minus
	Star
	StarStar
	Slash
	Percent
	PlusPlus
	MinusMinus
	Shl
	Shr
	UShr
	Amp
	Pipe
	Caret
	Tilde
	Bang
	AndAnd
	OrOr
	Lt
	Gt
	LtEq
	GtEq
	EqEq
	EqEqEq
	BangEq
	BangEqEq

	Assign
	PlusAssign
	MinusAssign
	StarAssign
	StarStarAssign
	SlashAssign
	PercentAssign
	ShlAssign
	ShrAssign
	UShrAssign
	AmpAssign
	PipeAssign
	CaretAssign
	AndAndAssign
	OrOrAssign
	QuestionQuestionAssign

	At
	Hash

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid", EOF: "EOF",
	Ident: "Ident", NumberLit: "NumberLit", StringLit: "StringLit", TemplateLit: "TemplateLit", RegexLit: "RegexLit",
	KwVar: "KwVar", KwLet: "KwLet", KwConst: "KwConst", KwFunction: "KwFunction", KwReturn: "KwReturn",
	KwIf: "KwIf", KwElse: "KwElse", KwNew: "KwNew", KwTypeof: "KwTypeof", KwVoid: "KwVoid",
	KwDelete: "KwDelete", KwThrow: "KwThrow", KwTrue: "KwTrue", KwFalse: "KwFalse", KwNull: "KwNull",
	KwThis: "KwThis", KwIn: "KwIn", KwInstanceof: "KwInstanceof",
	LBrace: "LBrace", RBrace: "RBrace", LParen: "LParen", RParen: "RParen", LBracket: "LBracket",
	RBracket: "RBracket", Semicolon: "Semicolon", Comma: "Comma", Colon: "Colon", Dot: "Dot",
	DotDotDot: "DotDotDot", Question: "Question", QuestionDot: "QuestionDot",
	QuestionQuestion: "QuestionQuestion", FatArrow: "FatArrow",
	Plus: "Plus", Minus: "Minus", Star: "Star", StarStar: "StarStar", Slash: "Slash", Percent: "Percent",
	PlusPlus: "PlusPlus", MinusMinus: "MinusMinus", Shl: "Shl", Shr: "Shr", UShr: "UShr", Amp: "Amp",
	Pipe: "Pipe", Caret: "Caret", Tilde: "Tilde", Bang: "Bang", AndAnd: "AndAnd", OrOr: "OrOr",
	Lt: "Lt", Gt: "Gt", LtEq: "LtEq", GtEq: "GtEq", EqEq: "EqEq", EqEqEq: "EqEqEq", BangEq: "BangEq",
	BangEqEq: "BangEqEq",
	Assign: "Assign", PlusAssign: "PlusAssign", MinusAssign: "MinusAssign", StarAssign: "StarAssign",
	StarStarAssign: "StarStarAssign", SlashAssign: "SlashAssign", PercentAssign: "PercentAssign",
	ShlAssign: "ShlAssign", ShrAssign: "ShrAssign", UShrAssign: "UShrAssign", AmpAssign: "AmpAssign",
	PipeAssign: "PipeAssign", CaretAssign: "CaretAssign", AndAndAssign: "AndAndAssign",
	OrOrAssign: "OrOrAssign", QuestionQuestionAssign: "QuestionQuestionAssign",
	At: "At", Hash: "Hash",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"new":        KwNew,
	"typeof":     KwTypeof,
	"void":       KwVoid,
	"delete":     KwDelete,
	"throw":      KwThrow,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"this":       KwThis,
	"in":         KwIn,
	"instanceof": KwInstanceof,
}

// LookupKeyword maps identifier text to its keyword kind.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// IsKeyword reports whether k is one of the keyword kinds.
func (k Kind) IsKeyword() bool {
	return k >= KwVar && k <= KwInstanceof
}

// IsAssign reports whether k is '=' or a compound assignment operator.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= QuestionQuestionAssign
}
