package format

import (
	"slices"
	"strings"
	"unicode"

	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

// memberChain lays out a call chain with more than two calls, such as
// a.b().c().d(), breaking before each dot when it does not fit on one line.
// It reports false when n is not such a chain.
func (c *Context) memberChain(n *syntax.Node) (doc.Doc, bool, error) {
	var links []*syntax.Node
	calls := 0
	cur := n
	for cur != nil && isChainLink(cur) {
		if cur.Kind == syntax.CallExpr {
			calls++
		}
		links = append(links, cur)
		cur = cur.NodeAt(0)
	}
	if cur == nil || calls <= 2 {
		return nil, false, nil
	}
	slices.Reverse(links)
	head := cur

	// голова забирает вызовы и индексы сразу за ней
	cut := nextMember(links, 0)
	if cut == 0 && isFactoryHead(head, c.opts.IndentWidth) {
		cut = nextMember(links, 1)
	}
	var groups [][]*syntax.Node
	for i := cut; i < len(links); {
		j := nextMember(links, i+1)
		groups = append(groups, links[i:j])
		i = j
	}
	if len(groups) < 2 {
		return nil, false, nil
	}

	headDoc, err := c.Node(head)
	if err != nil {
		return nil, false, err
	}
	headParts := []doc.Doc{headDoc}
	for _, link := range links[:cut] {
		d, err := c.elements(link.Children[1:])
		if err != nil {
			return nil, false, err
		}
		headParts = append(headParts, d)
	}
	var rest []doc.Doc
	for _, g := range groups {
		rest = append(rest, doc.SoftLine())
		for _, link := range g {
			d, err := c.elements(link.Children[1:])
			if err != nil {
				return nil, false, err
			}
			rest = append(rest, d)
		}
	}
	chain := doc.Concat(doc.Concat(headParts...), doc.Indent(doc.Concat(rest...)))
	if hasComplexArguments(links) {
		chain = doc.Concat(doc.BreakParent(), chain)
	}
	return doc.Group(chain), true, nil
}

func isChainLink(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.CallExpr, syntax.MemberExpr, syntax.IndexExpr:
		return true
	}
	return false
}

// nextMember returns the index of the first MemberExpr at or after from.
func nextMember(links []*syntax.Node, from int) int {
	for i := from; i < len(links); i++ {
		if links[i].Kind == syntax.MemberExpr {
			return i
		}
	}
	return len(links)
}

// isFactoryHead: this, a short name or a capitalised one stays glued to
// its first member: z.object(...), this.items, Promise.resolve().
func isFactoryHead(head *syntax.Node, indentWidth int) bool {
	t := firstTok(head)
	if t == nil || len(head.Children) != 1 {
		return false
	}
	switch {
	case t.Kind == token.KwThis:
		return true
	case t.Kind != token.Ident:
		return false
	case len(t.Text) <= indentWidth:
		return true
	case strings.Trim(t.Text, "$_") == "":
		return true
	}
	r := []rune(t.Text)[0]
	return unicode.IsUpper(r)
}

func hasComplexArguments(links []*syntax.Node) bool {
	for _, link := range links {
		if link.Kind != syntax.CallExpr {
			continue
		}
		for _, it := range argItems(link) {
			if !isSimpleArg(it.node, 0) {
				return true
			}
		}
	}
	return false
}

// isSimpleArg: names, literals, short member paths, unary of those, calls
// and containers made of simple parts.
func isSimpleArg(n *syntax.Node, depth int) bool {
	if depth > 2 {
		return false
	}
	switch n.Kind {
	case syntax.Name, syntax.Literal, syntax.TemplateLiteral:
		return true
	case syntax.ObjectLit, syntax.ArrayLit:
		_, _, items := splitList(n)
		for _, it := range items {
			v := it.node
			if v.Kind == syntax.Property {
				nodes := v.Nodes()
				if v.Token(token.Colon) == nil {
					if len(nodes) > 0 {
						return false
					}
					continue
				}
				v = nodes[len(nodes)-1]
			}
			if !isSimpleArg(v, depth+1) {
				return false
			}
		}
		return true
	case syntax.UnaryExpr:
		op := firstTok(n)
		if op == nil || op.Kind.IsKeyword() {
			return false
		}
		arg := n.NodeAt(0)
		return arg != nil && isSimpleArg(arg, depth)
	case syntax.MemberExpr:
		obj := n.NodeAt(0)
		return obj != nil && isSimpleArg(obj, depth)
	case syntax.IndexExpr:
		obj, idx := n.NodeAt(0), n.NodeAt(1)
		return obj != nil && idx != nil && isSimpleArg(obj, depth) && isSimpleArg(idx, depth)
	case syntax.SpreadElement, syntax.Hole:
		arg := n.NodeAt(0)
		return arg == nil || isSimpleArg(arg, depth)
	case syntax.CallExpr, syntax.NewExpr:
		callee := n.NodeAt(0)
		if callee == nil || !isSimpleArg(callee, depth) {
			return false
		}
		for _, it := range argItems(n) {
			if !isSimpleArg(it.node, depth+1) {
				return false
			}
		}
		return true
	case syntax.ArrowFunc:
		body := n.NodeAt(1)
		if body == nil {
			return false
		}
		if body.Kind == syntax.Block {
			return len(body.Nodes()) == 0
		}
		return isSimpleArg(body, depth+1)
	}
	return false
}

// argItems returns the arguments of a call or new expression.
func argItems(call *syntax.Node) []listItem {
	for _, ch := range call.Children {
		if ch.Node != nil && ch.Node.Kind == syntax.ArgList {
			_, _, items := splitList(ch.Node)
			return items
		}
	}
	return nil
}
