package token

import (
	"quill/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, TemplateLit, RegexLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsName reports whether the token can be used as a property name:
// identifiers and keywords alike.
func (t Token) IsName() bool { return t.Kind == Ident || t.Kind.IsKeyword() }

// NewlineBefore reports whether a line break separates this token from the previous one.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Newlines() > 0 {
			return true
		}
	}
	return false
}

// LinesBefore counts line breaks in the leading trivia up to the first comment.
// A value of 2 or more means the source had a blank line in front of the token
// (or of its first leading comment).
func (t Token) LinesBefore() int {
	n := 0
	for _, tr := range t.Leading {
		if tr.IsComment() {
			break
		}
		n += tr.Newlines()
	}
	return n
}

// HasComments reports whether any leading or trailing trivia is a comment.
func (t Token) HasComments() bool {
	for _, tr := range t.Leading {
		if tr.IsComment() {
			return true
		}
	}
	for _, tr := range t.Trailing {
		if tr.IsComment() {
			return true
		}
	}
	return false
}
