package format

import (
	"errors"
	"fmt"

	"quill/internal/source"
	"quill/internal/syntax"
)

// FormatError reports a tree the rules cannot lay out, typically a node
// missing a child the grammar requires.
type FormatError struct {
	Kind   syntax.Kind
	Span   source.Span
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s at %s: %s", e.Kind, e.Span, e.Reason)
}

// ErrSyntax is returned by Source when the input has syntax errors.
var ErrSyntax = errors.New("syntax errors")

// ErrUnstable is returned by CheckStable when formatting twice differs.
var ErrUnstable = errors.New("output is not stable")

func malformed(n *syntax.Node, reason string) error {
	return &FormatError{Kind: n.Kind, Span: n.Span, Reason: reason}
}
