package format

import (
	"fmt"
	"strings"

	"quill/internal/printer"
)

type QuoteStyle uint8

const (
	QuoteDouble QuoteStyle = iota
	QuoteSingle
)

func (q QuoteStyle) String() string {
	if q == QuoteSingle {
		return "single"
	}
	return "double"
}

func (q QuoteStyle) char() byte {
	if q == QuoteSingle {
		return '\''
	}
	return '"'
}

// ParseQuoteStyle accepts "double" or "single".
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double":
		return QuoteDouble, nil
	case "single":
		return QuoteSingle, nil
	}
	return QuoteDouble, fmt.Errorf("unknown quote style %q (want double or single)", s)
}

type Options struct {
	PrintWidth  int
	IndentStyle printer.IndentStyle
	IndentWidth int
	LineEnding  printer.LineEnding
	// QuoteStyle applies to script string literals; JSON keeps its quotes.
	QuoteStyle QuoteStyle
}

func DefaultOptions() Options {
	p := printer.DefaultOptions()
	return Options{
		PrintWidth:  p.PrintWidth,
		IndentStyle: p.IndentStyle,
		IndentWidth: p.IndentWidth,
		LineEnding:  p.LineEnding,
		QuoteStyle:  QuoteDouble,
	}
}

// PrinterOptions returns the subset of options the printer consumes.
func (o Options) PrinterOptions() printer.Options {
	return printer.Options{
		PrintWidth:  o.PrintWidth,
		IndentStyle: o.IndentStyle,
		IndentWidth: o.IndentWidth,
		LineEnding:  o.LineEnding,
	}
}

// String is a stable fingerprint of the options, used as part of cache keys.
func (o Options) String() string {
	return fmt.Sprintf("width=%d indent=%s/%d eol=%s quote=%s",
		o.PrintWidth, o.IndentStyle, o.IndentWidth, o.LineEnding, o.QuoteStyle)
}
