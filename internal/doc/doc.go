// Package doc is the layout IR consumed by the printer: tokens, line breaks,
// groups that resolve flat or expanded as a unit, indentation, conditional
// content, fill lists, deferred line suffixes and verbatim source spans.
//
// A Doc tree is built bottom-up once per format call and never mutated
// afterwards. A nil Doc is equivalent to Empty.
package doc

import (
	"quill/internal/source"
)

// Doc is one node of the layout IR.
type Doc interface {
	isDoc()
}

// Text is an atomic run of characters. When Mapped is set, Source is the
// span of the token it was printed from.
type Text struct {
	Value  string
	Source source.Span
	Mapped bool
}

// Space is one literal space; it is dropped in front of a line break and
// at the start of a line, and adjacent spaces collapse into one.
type Space struct{}

type LineMode uint8

const (
	// LineSoft renders as nothing when flat.
	LineSoft LineMode = iota
	// LineSoftOrSpace renders as a space when flat.
	LineSoftOrSpace
	// LineHard always breaks and forces enclosing groups to expand.
	LineHard
	// LineEmpty always breaks leaving one blank line; repeated ones collapse.
	LineEmpty
)

func (m LineMode) String() string {
	switch m {
	case LineSoft:
		return "soft"
	case LineSoftOrSpace:
		return "line"
	case LineHard:
		return "hard"
	case LineEmpty:
		return "empty"
	}
	return "LineMode(?)"
}

// IsHard reports whether the break is unconditional.
func (m LineMode) IsHard() bool { return m == LineHard || m == LineEmpty }

// ForceBreak prints nothing and forces every enclosing group to expand.
// Trailing line comments use it so the comment keeps its line.
type ForceBreak struct{}

// Break is a line break; Mode decides how it renders.
type Break struct {
	Mode LineMode
}

// GroupID names a group so that IfBreak can query its resolved mode.
// Zero means anonymous.
type GroupID uint32

// Grouped is the unit of the flat/expanded decision.
type Grouped struct {
	Contents Doc
	ID       GroupID
}

// Indented raises the indentation of breaks inside Contents by one level.
type Indented struct {
	Contents Doc
}

// Conditional prints Break when the target group is expanded and Flat
// otherwise. A zero Group targets the nearest enclosing group.
type Conditional struct {
	Break Doc
	Flat  Doc
	Group GroupID
}

// Fill lays items out like words in a paragraph: each separator breaks only
// when the following item does not fit on the current line.
type Fill struct {
	Separator Doc
	Items     []Doc
}

// LineSuffix is deferred until just before the next line break.
type LineSuffix struct {
	Contents Doc
}

type Sequence struct {
	Parts []Doc
}

// Verbatim is source text copied as is. Its interior is never re-broken or
// re-indented.
type Verbatim struct {
	Span source.Span
	Text string
}

type empty struct{}

// Empty contributes nothing.
var Empty Doc = empty{}

func (Text) isDoc()        {}
func (Space) isDoc()       {}
func (Break) isDoc()       {}
func (ForceBreak) isDoc()  {}
func (*Grouped) isDoc()    {}
func (Indented) isDoc()    {}
func (Conditional) isDoc() {}
func (Fill) isDoc()        {}
func (LineSuffix) isDoc()  {}
func (Sequence) isDoc()    {}
func (Verbatim) isDoc()    {}
func (empty) isDoc()       {}

// IsEmpty reports whether d contributes nothing by construction.
func IsEmpty(d Doc) bool {
	switch v := d.(type) {
	case nil, empty:
		return true
	case Sequence:
		return len(v.Parts) == 0
	case Text:
		return v.Value == "" && !v.Mapped
	}
	return false
}
