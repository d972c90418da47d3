package format

import (
	"quill/internal/doc"
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

// Rule lays out one node kind. Rules reach children through c.Node and
// report malformed input as *FormatError.
type Rule func(c *Context, n *syntax.Node) (doc.Doc, error)

// Context is the read-only state shared by the rules of one format call,
// plus the bookkeeping that keeps every comment printed exactly once.
type Context struct {
	file  *source.File
	opts  Options
	json  bool
	rules map[syntax.Kind]Rule

	// комментарии, уже выведенные снаружи узла
	skipLeading  map[*token.Token]bool
	skipTrailing map[*token.Token]bool
}

func newContext(file *source.File, tree *syntax.Node, opts Options, rules map[syntax.Kind]Rule) *Context {
	return &Context{
		file:         file,
		opts:         opts,
		json:         tree.Kind == syntax.JSONDocument,
		rules:        rules,
		skipLeading:  make(map[*token.Token]bool),
		skipTrailing: make(map[*token.Token]bool),
	}
}

func (c *Context) Options() Options   { return c.opts }
func (c *Context) File() *source.File { return c.file }
func (c *Context) IsJSON() bool       { return c.json }

// Node lays out n with the rule for its kind. Kinds without a rule, Bogus
// and Unknown nodes, and nodes marked quill-ignore are copied verbatim.
// A nil node lays out as nothing.
func (c *Context) Node(n *syntax.Node) (doc.Doc, error) {
	if n == nil {
		return doc.Empty, nil
	}
	if n.Kind == syntax.Bogus || n.Kind == syntax.Unknown || c.ignored(n) {
		return c.verbatim(n), nil
	}
	rule, ok := c.rules[n.Kind]
	if !ok {
		return c.verbatim(n), nil
	}
	return rule(c, n)
}

// element lays out one child slot.
func (c *Context) element(e syntax.Element) (doc.Doc, error) {
	if e.Token != nil {
		return c.tok(e.Token), nil
	}
	return c.Node(e.Node)
}

// elements lays out children back to back.
func (c *Context) elements(es []syntax.Element) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(es))
	for _, e := range es {
		d, err := c.element(e)
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
	}
	return doc.Concat(parts...), nil
}

// child returns the i-th child node or a FormatError naming what is missing.
func (c *Context) child(n *syntax.Node, i int, what string) (*syntax.Node, error) {
	if ch := n.NodeAt(i); ch != nil {
		return ch, nil
	}
	return nil, malformed(n, "missing "+what)
}

// token returns the first child token of kind or a FormatError.
func (c *Context) token(n *syntax.Node, kind token.Kind, what string) (*token.Token, error) {
	if t := n.Token(kind); t != nil {
		return t, nil
	}
	return nil, malformed(n, "missing "+what)
}

// nodeDoc is c.Node for a required child.
func (c *Context) nodeDoc(n *syntax.Node, i int, what string) (doc.Doc, error) {
	ch, err := c.child(n, i, what)
	if err != nil {
		return nil, err
	}
	return c.Node(ch)
}
