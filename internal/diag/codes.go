package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedTemplate     Code = 1005
	LexUnterminatedRegex        Code = 1006
	LexBadEscape                Code = 1007

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectColon       Code = 2003
	SynExpectValue       Code = 2004
	SynExpectPropertyKey Code = 2005
	SynTrailingContent   Code = 2006
	SynTrailingComma     Code = 2007
	SynCommentInJSON     Code = 2008
	SynSingleQuoteJSON   Code = 2009
	SynUnknownStatement  Code = 2010

	// Ввод-вывод
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Конфигурация
	CfgInvalidValue Code = 5001
	CfgUnknownKey   Code = 5002

	// Форматирование
	FmtMalformedTree Code = 6001
	FmtInternal      Code = 6002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Invalid number literal",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexUnterminatedRegex:        "Unterminated regular expression",
	LexBadEscape:                "Invalid escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynExpectColon:              "Expected ':'",
	SynExpectValue:              "Expected a value",
	SynExpectPropertyKey:        "Expected a property key",
	SynTrailingContent:          "Unexpected content after the document value",
	SynTrailingComma:            "Trailing comma is not allowed",
	SynCommentInJSON:            "Comments are not allowed in JSON",
	SynSingleQuoteJSON:          "JSON strings must use double quotes",
	SynUnknownStatement:         "Statement is kept verbatim",
	IOReadFailed:                "Failed to read file",
	IOWriteFailed:               "Failed to write file",
	CfgInvalidValue:             "Invalid configuration value",
	CfgUnknownKey:               "Unknown configuration key",
	FmtMalformedTree:            "Malformed syntax tree",
	FmtInternal:                 "Internal formatter error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
