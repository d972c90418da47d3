package syntax

import (
	"quill/internal/source"
	"quill/internal/token"
)

// Element is one child slot of a node: either a nested node or a token.
type Element struct {
	Node  *Node
	Token *token.Token
}

// IsToken reports whether the element holds a token.
func (e Element) IsToken() bool { return e.Token != nil }

type Node struct {
	Kind     Kind
	Span     source.Span
	Children []Element
}

// New builds a node and computes its span from the children.
// Nil nodes in elems are skipped.
func New(kind Kind, elems ...Element) *Node {
	n := &Node{Kind: kind}
	for _, e := range elems {
		n.Append(e)
	}
	return n
}

// Tok wraps a token into an element.
func Tok(t token.Token) Element { return Element{Token: &t} }

// Sub wraps a node into an element.
func Sub(n *Node) Element { return Element{Node: n} }

// Append adds a child and widens the span. EOF tokens do not widen it.
func (n *Node) Append(e Element) {
	var sp source.Span
	switch {
	case e.Token != nil:
		if e.Token.Kind == token.EOF {
			n.Children = append(n.Children, e)
			if len(n.Children) == 1 {
				n.Span = e.Token.Span
			}
			return
		}
		sp = e.Token.Span
	case e.Node != nil:
		sp = e.Node.Span
	default:
		return
	}
	if n.hasSpan() {
		n.Span = n.Span.Cover(sp)
	} else {
		n.Span = sp
	}
	n.Children = append(n.Children, e)
}

func (n *Node) hasSpan() bool {
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == token.EOF {
			continue
		}
		return true
	}
	return false
}

// Nodes returns direct child nodes in order.
func (n *Node) Nodes() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// Tokens returns direct child tokens in order.
func (n *Node) Tokens() []*token.Token {
	out := make([]*token.Token, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Token != nil {
			out = append(out, c.Token)
		}
	}
	return out
}

// Token returns the first direct child token of the given kind, or nil.
func (n *Node) Token(kind token.Kind) *token.Token {
	for _, c := range n.Children {
		if c.Token != nil && c.Token.Kind == kind {
			return c.Token
		}
	}
	return nil
}

// NodeAt returns the i-th direct child node, or nil.
func (n *Node) NodeAt(i int) *Node {
	for _, c := range n.Children {
		if c.Node == nil {
			continue
		}
		if i == 0 {
			return c.Node
		}
		i--
	}
	return nil
}

// FirstToken returns the leftmost token in the subtree.
func (n *Node) FirstToken() *token.Token {
	cur := n
	for cur != nil {
		if len(cur.Children) == 0 {
			return nil
		}
		c := cur.Children[0]
		if c.Token != nil {
			return c.Token
		}
		cur = c.Node
	}
	return nil
}

// LastToken returns the rightmost token in the subtree.
func (n *Node) LastToken() *token.Token {
	cur := n
	for cur != nil {
		if len(cur.Children) == 0 {
			return nil
		}
		c := cur.Children[len(cur.Children)-1]
		if c.Token != nil {
			return c.Token
		}
		cur = c.Node
	}
	return nil
}

// Walk visits the subtree in pre-order with an explicit stack; visit
// returning false skips the node's children.
func Walk(root *Node, visit func(*Node) bool) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			if c := n.Children[i].Node; c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// AllTokens returns every token of the subtree in source order.
func AllTokens(root *Node) []*token.Token {
	var out []*token.Token
	type frame struct {
		n *Node
		i int
	}
	if root == nil {
		return nil
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.n.Children) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.n.Children[top.i]
		top.i++
		if c.Token != nil {
			out = append(out, c.Token)
		} else if c.Node != nil {
			stack = append(stack, frame{n: c.Node})
		}
	}
	return out
}
