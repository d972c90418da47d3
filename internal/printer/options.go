package printer

import (
	"fmt"
	"strings"
)

type IndentStyle uint8

const (
	IndentSpace IndentStyle = iota
	IndentTab
)

func (s IndentStyle) String() string {
	if s == IndentTab {
		return "tab"
	}
	return "space"
}

// ParseIndentStyle accepts "space" or "tab".
func ParseIndentStyle(s string) (IndentStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "space", "spaces":
		return IndentSpace, nil
	case "tab", "tabs":
		return IndentTab, nil
	}
	return IndentSpace, fmt.Errorf("unknown indent style %q (want space or tab)", s)
}

type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
)

func (e LineEnding) String() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

// Newline returns the bytes written for a line break.
func (e LineEnding) Newline() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseLineEnding accepts "lf" or "crlf".
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lf", "\n":
		return LF, nil
	case "crlf", "\r\n":
		return CRLF, nil
	}
	return LF, fmt.Errorf("unknown line ending %q (want lf or crlf)", s)
}

type Options struct {
	PrintWidth  int
	IndentStyle IndentStyle
	// IndentWidth is the number of columns per level; with tabs it is the
	// width a tab counts for.
	IndentWidth int
	LineEnding  LineEnding
}

// DefaultOptions: 80 columns, two-space indent, LF.
func DefaultOptions() Options {
	return Options{PrintWidth: 80, IndentStyle: IndentSpace, IndentWidth: 2, LineEnding: LF}
}

func (o Options) withDefaults() Options {
	if o.PrintWidth <= 0 {
		o.PrintWidth = 80
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	return o
}
