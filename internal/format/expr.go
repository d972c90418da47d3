package format

import (
	"quill/internal/doc"
	"quill/internal/parser"
	"quill/internal/syntax"
	"quill/internal/token"
)

func formatCall(c *Context, n *syntax.Node) (doc.Doc, error) {
	if n.NodeAt(0) == nil {
		return nil, malformed(n, "missing callee")
	}
	if d, ok, err := c.memberChain(n); ok || err != nil {
		return d, err
	}
	return c.elements(n.Children)
}

// formatAccess serves member and index access: the object followed by the
// accessor tokens as written.
func formatAccess(c *Context, n *syntax.Node) (doc.Doc, error) {
	if n.NodeAt(0) == nil {
		return nil, malformed(n, "missing object")
	}
	return c.elements(n.Children)
}

func formatNew(c *Context, n *syntax.Node) (doc.Doc, error) {
	kw, err := c.token(n, token.KwNew, "'new'")
	if err != nil {
		return nil, err
	}
	callee, err := c.nodeDoc(n, 0, "constructor")
	if err != nil {
		return nil, err
	}
	args := doc.Token("()")
	if a := n.NodeAt(1); a != nil {
		if args, err = c.Node(a); err != nil {
			return nil, err
		}
	}
	return doc.Concat(c.tok(kw), doc.SpaceDoc(), callee, args), nil
}

func formatArgs(c *Context, n *syntax.Node) (doc.Doc, error) {
	open, close, items := splitList(n)
	if open == nil || close == nil {
		return nil, malformed(n, "unclosed arguments")
	}
	if len(items) == 0 {
		return c.emptyList(open, close), nil
	}
	if !argumentComments(items, close) && (hugLast(items) || hugFirst(items)) {
		return c.huggedArgs(open, close, items)
	}
	return c.list(n, listLayout{trailingComma: true})
}

// huggedArgs prints the arguments on the call's line and lets the one
// function or object among them break on its own: foo(a, () => {...}).
func (c *Context) huggedArgs(open, close *token.Token, items []listItem) (doc.Doc, error) {
	parts := []doc.Doc{c.tok(open)}
	for i, it := range items {
		d, err := c.Node(it.node)
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
		switch {
		case i == len(items)-1:
		case it.comma != nil:
			parts = append(parts, c.tok(it.comma), doc.SpaceDoc())
		default:
			parts = append(parts, doc.Token(","), doc.SpaceDoc())
		}
	}
	parts = append(parts, c.tok(close))
	return doc.Concat(parts...), nil
}

func isHuggable(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.ArrowFunc, syntax.FunctionExpr:
		return true
	case syntax.ObjectLit, syntax.ArrayLit:
		_, _, items := splitList(n)
		return len(items) > 0
	}
	return false
}

func hugLast(items []listItem) bool {
	if !isHuggable(items[len(items)-1].node) {
		return false
	}
	for _, it := range items[:len(items)-1] {
		if isHuggable(it.node) || !isSimpleArg(it.node, 0) {
			return false
		}
	}
	return true
}

// hugFirst: setTimeout(function () {...}, 500).
func hugFirst(items []listItem) bool {
	if len(items) != 2 {
		return false
	}
	first, second := items[0].node, items[1].node
	if first.Kind != syntax.FunctionExpr && first.Kind != syntax.ArrowFunc {
		return false
	}
	if body := first.NodeAt(1); body == nil || body.Kind != syntax.Block {
		return false
	}
	return !isHuggable(second) && isSimpleArg(second, 0)
}

// argumentComments reports comments around the arguments themselves; any
// of them rules out hugging.
func argumentComments(items []listItem, close *token.Token) bool {
	if hasLeadingComments(close) {
		return true
	}
	for _, it := range items {
		if t := firstTok(it.node); t != nil && hasLeadingComments(t) {
			return true
		}
		if t := lastTok(it.node); t != nil && hasTrailingComments(t) {
			return true
		}
		if it.comma != nil && it.comma.HasComments() {
			return true
		}
	}
	return false
}

func hasTrailingComments(t *token.Token) bool {
	for _, tr := range t.Trailing {
		if tr.IsComment() {
			return true
		}
	}
	return false
}

func isBinaryish(n *syntax.Node) bool {
	return n != nil && (n.Kind == syntax.BinaryExpr || n.Kind == syntax.LogicalExpr)
}

func binaryOperator(n *syntax.Node) *token.Token {
	if toks := n.Tokens(); len(toks) == 1 {
		return toks[0]
	}
	return nil
}

// binaryParts flattens a left-leaning chain of operators of equal
// precedence into [first, " op right", " op right", ...].
func (c *Context) binaryParts(n *syntax.Node) ([]doc.Doc, error) {
	spine := []*syntax.Node{n}
	for {
		cur := spine[len(spine)-1]
		left := cur.NodeAt(0)
		if !isBinaryish(left) || !shouldFlatten(binaryOperator(cur), binaryOperator(left)) {
			break
		}
		spine = append(spine, left)
	}
	first, err := c.nodeDoc(spine[len(spine)-1], 0, "left operand")
	if err != nil {
		return nil, err
	}
	parts := []doc.Doc{first}
	for i := len(spine) - 1; i >= 0; i-- {
		node := spine[i]
		op := binaryOperator(node)
		if op == nil {
			return nil, malformed(node, "missing operator")
		}
		right, err := c.child(node, 1, "right operand")
		if err != nil {
			return nil, err
		}
		rd, err := c.Node(right)
		if err != nil {
			return nil, err
		}
		if node.Kind == syntax.LogicalExpr && isHuggable(right) && right.Kind != syntax.ArrowFunc && right.Kind != syntax.FunctionExpr {
			// a || {...}: объект остаётся на строке оператора
			parts = append(parts, doc.Concat(doc.SpaceDoc(), c.tok(op), doc.SpaceDoc(), rd))
			continue
		}
		parts = append(parts, doc.Concat(doc.SpaceDoc(), c.tok(op), doc.Line(), rd))
	}
	return parts, nil
}

func shouldFlatten(parent, child *token.Token) bool {
	if parent == nil || child == nil {
		return false
	}
	pk, ck := parent.Kind, child.Kind
	if parser.BinaryPrec(pk) != parser.BinaryPrec(ck) {
		return false
	}
	switch {
	case pk == token.StarStar:
		return false
	case isEquality(pk) && isEquality(ck):
		return false
	case (ck == token.Percent && isMultiplicative(pk)) || (pk == token.Percent && isMultiplicative(ck)):
		return false
	case ck != pk && isMultiplicative(ck) && isMultiplicative(pk):
		return false
	case isBitshift(pk) && isBitshift(ck):
		return false
	}
	return true
}

func isEquality(k token.Kind) bool {
	return k == token.EqEq || k == token.BangEq || k == token.EqEqEq || k == token.BangEqEq
}

func isMultiplicative(k token.Kind) bool {
	return k == token.Star || k == token.Slash || k == token.Percent
}

func isBitshift(k token.Kind) bool {
	return k == token.Shl || k == token.Shr || k == token.UShr
}

// Цепочка операторов: первый операнд, остальные с отступом.
func formatBinary(c *Context, n *syntax.Node) (doc.Doc, error) {
	parts, err := c.binaryParts(n)
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(parts[0], doc.Indent(doc.Concat(parts[1:]...)))), nil
}

// unindented lays out an operator chain without its own indentation, for
// places that already indent it (if conditions, assignments, return).
func (c *Context) unindented(n *syntax.Node) (doc.Doc, error) {
	if !isBinaryish(n) {
		return c.Node(n)
	}
	parts, err := c.binaryParts(n)
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(parts...)), nil
}

func formatUnary(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	if len(toks) != 1 {
		return nil, malformed(n, "missing operator")
	}
	op := toks[0]
	argNode, err := c.child(n, 0, "operand")
	if err != nil {
		return nil, err
	}
	arg, err := c.Node(argNode)
	if err != nil {
		return nil, err
	}
	space := op.Kind.IsKeyword()
	if next := firstTok(argNode); next != nil {
		switch op.Kind {
		case token.Minus:
			space = space || next.Kind == token.Minus || next.Kind == token.MinusMinus
		case token.Plus:
			space = space || next.Kind == token.Plus || next.Kind == token.PlusPlus
		}
	}
	if space {
		return doc.Concat(c.tok(op), doc.SpaceDoc(), arg), nil
	}
	return doc.Concat(c.tok(op), arg), nil
}

func formatUpdate(c *Context, n *syntax.Node) (doc.Doc, error) {
	if n.NodeAt(0) == nil {
		return nil, malformed(n, "missing operand")
	}
	return c.elements(n.Children)
}

func formatConditional(c *Context, n *syntax.Node) (doc.Doc, error) {
	q, err := c.token(n, token.Question, "'?'")
	if err != nil {
		return nil, err
	}
	colon, err := c.token(n, token.Colon, "':'")
	if err != nil {
		return nil, err
	}
	test, err := c.nodeDoc(n, 0, "condition")
	if err != nil {
		return nil, err
	}
	cons, err := c.nodeDoc(n, 1, "consequent")
	if err != nil {
		return nil, err
	}
	alt, err := c.nodeDoc(n, 2, "alternate")
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(
		test,
		doc.Indent(doc.Concat(
			doc.Line(), c.tok(q), doc.SpaceDoc(), cons,
			doc.Line(), c.tok(colon), doc.SpaceDoc(), alt,
		)),
	)), nil
}

func formatAssign(c *Context, n *syntax.Node) (doc.Doc, error) {
	left, err := c.nodeDoc(n, 0, "assignment target")
	if err != nil {
		return nil, err
	}
	toks := n.Tokens()
	if len(toks) != 1 {
		return nil, malformed(n, "missing operator")
	}
	right, err := c.child(n, 1, "assigned value")
	if err != nil {
		return nil, err
	}
	return c.assignment(left, doc.Concat(doc.SpaceDoc(), c.tok(toks[0])), right)
}

// assignment lays out left op right. Values that break well on their own
// (objects, calls, functions) stay on the operator's line; anything else
// moves to the next line, indented, when it does not fit.
func (c *Context) assignment(left, op doc.Doc, right *syntax.Node) (doc.Doc, error) {
	if staysOnLine(right) {
		rd, err := c.Node(right)
		if err != nil {
			return nil, err
		}
		return doc.Concat(left, op, doc.SpaceDoc(), rd), nil
	}
	rd, err := c.unindented(right)
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(left, op, doc.Group(doc.Indent(doc.Concat(doc.Line(), rd))))), nil
}

func staysOnLine(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.ObjectLit, syntax.ArrayLit, syntax.ArrowFunc, syntax.FunctionExpr,
		syntax.CallExpr, syntax.NewExpr, syntax.TemplateLiteral, syntax.ConditionalExpr,
		syntax.AssignExpr, syntax.ParenExpr, syntax.Unknown, syntax.Bogus:
		return true
	}
	return false
}

func formatSequence(c *Context, n *syntax.Node) (doc.Doc, error) {
	var first doc.Doc
	var rest []doc.Doc
	for _, ch := range n.Children {
		if ch.Token != nil {
			rest = append(rest, c.tok(ch.Token), doc.Line())
			continue
		}
		d, err := c.Node(ch.Node)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = d
		} else {
			rest = append(rest, d)
		}
	}
	if first == nil {
		return nil, malformed(n, "empty sequence")
	}
	return doc.Group(doc.Concat(first, doc.Indent(doc.Concat(rest...)))), nil
}

func formatArrow(c *Context, n *syntax.Node) (doc.Doc, error) {
	params, err := c.child(n, 0, "parameters")
	if err != nil {
		return nil, err
	}
	arrow, err := c.token(n, token.FatArrow, "'=>'")
	if err != nil {
		return nil, err
	}
	body, err := c.child(n, 1, "body")
	if err != nil {
		return nil, err
	}
	paramsDoc, err := c.Node(params)
	if err != nil {
		return nil, err
	}
	if params.Kind == syntax.Name {
		paramsDoc = doc.Concat(doc.Token("("), paramsDoc, doc.Token(")"))
	}
	var bodyDoc doc.Doc
	switch body.Kind {
	case syntax.Block, syntax.ObjectLit, syntax.ArrayLit, syntax.CallExpr, syntax.NewExpr,
		syntax.TemplateLiteral, syntax.ArrowFunc, syntax.FunctionExpr, syntax.ParenExpr:
		d, err := c.Node(body)
		if err != nil {
			return nil, err
		}
		bodyDoc = doc.Concat(doc.SpaceDoc(), d)
	default:
		d, err := c.unindented(body)
		if err != nil {
			return nil, err
		}
		bodyDoc = doc.Group(doc.Indent(doc.Concat(doc.Line(), d)))
	}
	return doc.Concat(paramsDoc, doc.SpaceDoc(), c.tok(arrow), bodyDoc), nil
}

func formatParen(c *Context, n *syntax.Node) (doc.Doc, error) {
	if n.NodeAt(0) == nil || len(n.Tokens()) != 2 {
		return nil, malformed(n, "unbalanced parentheses")
	}
	return c.elements(n.Children)
}

func formatParams(c *Context, n *syntax.Node) (doc.Doc, error) {
	open, close, items := splitList(n)
	if open == nil || close == nil {
		return nil, malformed(n, "unclosed parameters")
	}
	if len(items) == 0 {
		return c.emptyList(open, close), nil
	}
	if len(items) == 1 && hugsParam(items[0].node) && !argumentComments(items, close) {
		return c.huggedArgs(open, close, items)
	}
	last := items[len(items)-1].node
	return c.list(n, listLayout{trailingComma: last.Kind != syntax.SpreadElement})
}

// hugsParam: единственный параметр-деструктуризация объекта без значения
// по умолчанию: function f({ a, b }) {}.
func hugsParam(n *syntax.Node) bool {
	if n.Kind != syntax.Param || n.Token(token.Assign) != nil {
		return false
	}
	target := n.NodeAt(0)
	return target != nil && target.Kind == syntax.ObjectLit
}

func formatParam(c *Context, n *syntax.Node) (doc.Doc, error) {
	target, err := c.nodeDoc(n, 0, "binding")
	if err != nil {
		return nil, err
	}
	eq := n.Token(token.Assign)
	if eq == nil {
		return target, nil
	}
	def, err := c.nodeDoc(n, 1, "default value")
	if err != nil {
		return nil, err
	}
	return doc.Concat(target, doc.SpaceDoc(), c.tok(eq), doc.SpaceDoc(), def), nil
}

func formatArray(c *Context, n *syntax.Node) (doc.Doc, error) {
	_, _, items := splitList(n)
	trailing := len(items) == 0 || items[len(items)-1].node.Kind != syntax.SpreadElement
	return c.list(n, listLayout{
		trailingComma: trailing,
		fill:          len(items) > 1 && allNumbers(items),
		forceBreak:    concisePrintable(items, syntax.ObjectLit, syntax.ArrayLit),
	})
}

func allNumbers(items []listItem) bool {
	for _, it := range items {
		n := it.node
		if n.Kind == syntax.UnaryExpr {
			if op := firstTok(n); op == nil || (op.Kind != token.Minus && op.Kind != token.Plus) {
				return false
			}
			n = n.NodeAt(0)
		}
		if n == nil || n.Kind != syntax.Literal {
			return false
		}
		if t := firstTok(n); t == nil || t.Kind != token.NumberLit {
			return false
		}
	}
	return true
}

func formatObject(c *Context, n *syntax.Node) (doc.Doc, error) {
	_, _, items := splitList(n)
	trailing := len(items) == 0 || items[len(items)-1].node.Kind != syntax.SpreadElement
	return c.list(n, listLayout{
		padded:        true,
		trailingComma: trailing,
		forceBreak:    firstOnNewLine(n),
	})
}

// formatProperty: key: value, shorthand, key = default (in patterns),
// methods and computed keys.
func formatProperty(c *Context, n *syntax.Node) (doc.Doc, error) {
	colonAt := -1
	for i, ch := range n.Children {
		if ch.Token != nil && ch.Token.Kind == token.Colon {
			colonAt = i
			break
		}
	}
	if colonAt >= 0 {
		key, err := c.propertyParts(n.Children[:colonAt])
		if err != nil {
			return nil, err
		}
		if colonAt+1 >= len(n.Children) || n.Children[colonAt+1].Node == nil {
			return nil, malformed(n, "missing property value")
		}
		return c.assignment(key, c.tok(n.Children[colonAt].Token), n.Children[colonAt+1].Node)
	}
	if len(n.Children) == 0 {
		return nil, malformed(n, "empty property")
	}
	return c.propertyParts(n.Children)
}

func (c *Context) propertyParts(es []syntax.Element) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, len(es)+2)
	for _, e := range es {
		if t := e.Token; t != nil {
			switch t.Kind {
			case token.Assign:
				parts = append(parts, doc.SpaceDoc(), c.tok(t), doc.SpaceDoc())
			case token.StringLit:
				parts = append(parts, c.stringTok(t))
			default:
				parts = append(parts, c.tok(t))
			}
			continue
		}
		d, err := c.Node(e.Node)
		if err != nil {
			return nil, err
		}
		if e.Node.Kind == syntax.Block {
			parts = append(parts, doc.SpaceDoc())
		}
		parts = append(parts, d)
	}
	return doc.Concat(parts...), nil
}

func formatSpread(c *Context, n *syntax.Node) (doc.Doc, error) {
	dots, err := c.token(n, token.DotDotDot, "'...'")
	if err != nil {
		return nil, err
	}
	arg, err := c.nodeDoc(n, 0, "spread argument")
	if err != nil {
		return nil, err
	}
	return doc.Concat(c.tok(dots), arg), nil
}

func formatHole(*Context, *syntax.Node) (doc.Doc, error) {
	return doc.Empty, nil
}
