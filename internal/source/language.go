package source

import (
	"path/filepath"
	"strings"
)

// Language selects the grammar used to lex and parse a file.
type Language uint8

const (
	LangUnknown Language = iota
	LangJSON
	LangJSONC
	LangJS
	LangTS
)

func (l Language) String() string {
	switch l {
	case LangJSON:
		return "json"
	case LangJSONC:
		return "jsonc"
	case LangJS:
		return "js"
	case LangTS:
		return "ts"
	default:
		return "unknown"
	}
}

// IsJSON reports whether the language uses the JSON grammar.
func (l Language) IsJSON() bool { return l == LangJSON || l == LangJSONC }

// IsScript reports whether the language uses the JS grammar.
func (l Language) IsScript() bool { return l == LangJS || l == LangTS }

// LanguageFromPath picks a language by file extension.
func LanguageFromPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LangJSON
	case ".jsonc":
		return LangJSONC
	case ".js", ".mjs", ".cjs":
		return LangJS
	case ".ts", ".mts", ".cts":
		return LangTS
	default:
		return LangUnknown
	}
}

// SupportedExt reports whether files with this extension are picked up by the driver.
func SupportedExt(path string) bool {
	return LanguageFromPath(path) != LangUnknown
}
