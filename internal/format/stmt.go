package format

import (
	"quill/internal/doc"
	"quill/internal/syntax"
	"quill/internal/token"
)

func formatModule(c *Context, n *syntax.Node) (doc.Doc, error) {
	stmts := n.Nodes()
	body, err := c.statements(stmts)
	if err != nil {
		return nil, err
	}
	var eof *token.Token
	if toks := n.Tokens(); len(toks) > 0 {
		eof = toks[len(toks)-1]
	}
	return doc.Concat(body, c.endOfFile(eof, !doc.IsEmpty(body))), nil
}

// statements prints one statement per line and keeps a single blank line
// where the source had one or more. Comments around a statement are taken
// out of it, so they never force its groups to break.
func (c *Context) statements(stmts []*syntax.Node) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, 4*len(stmts))
	for _, stmt := range stmts {
		if stmt.Kind == syntax.EmptyStmt && !hasComments(stmt) {
			continue
		}
		if len(parts) > 0 {
			if t := firstTok(stmt); t != nil && t.LinesBefore() >= 2 {
				parts = append(parts, doc.EmptyLine())
			} else {
				parts = append(parts, doc.HardLine())
			}
		}
		lead := c.hoistLeading(stmt)
		trail := c.hoistTrailing(stmt)
		d, err := c.Node(stmt)
		if err != nil {
			return nil, err
		}
		parts = append(parts, lead, d, trail)
	}
	return doc.Concat(parts...), nil
}

func formatBlock(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	if len(toks) < 2 {
		return nil, malformed(n, "unclosed block")
	}
	open, close := toks[0], toks[len(toks)-1]
	stmts := n.Nodes()
	if len(stmts) == 0 {
		return c.emptyList(open, close), nil
	}
	body, err := c.statements(stmts)
	if err != nil {
		return nil, err
	}
	if doc.IsEmpty(body) {
		return c.emptyList(open, close), nil
	}
	closing := c.dangling(close)
	return doc.Concat(
		c.tok(open),
		doc.Indent(doc.Concat(doc.HardLine(), body, closing)),
		doc.HardLine(),
		c.tok(close),
	), nil
}

// semicolon prints the statement's own ';' or supplies one.
func (c *Context) semicolon(n *syntax.Node) doc.Doc {
	if semi := n.Token(token.Semicolon); semi != nil {
		return c.tok(semi)
	}
	return doc.Token(";")
}

func formatEmptyStmt(c *Context, n *syntax.Node) (doc.Doc, error) {
	return c.semicolon(n), nil
}

func formatExprStmt(c *Context, n *syntax.Node) (doc.Doc, error) {
	expr, err := c.nodeDoc(n, 0, "expression")
	if err != nil {
		return nil, err
	}
	return doc.Concat(expr, c.semicolon(n)), nil
}

// Несколько деклараторов: если хоть один с инициализатором, каждый на своей
// строке, иначе переносятся по необходимости.
func formatVarDecl(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	decls := n.Nodes()
	if len(toks) == 0 || len(decls) == 0 {
		return nil, malformed(n, "missing declarator")
	}
	var commas []*token.Token
	for _, t := range toks {
		if t.Kind == token.Comma {
			commas = append(commas, t)
		}
	}
	hasInit := false
	for _, d := range decls {
		if d.Token(token.Assign) != nil {
			hasInit = true
		}
	}

	first, err := c.Node(decls[0])
	if err != nil {
		return nil, err
	}
	var rest []doc.Doc
	for i, decl := range decls[1:] {
		d, err := c.Node(decl)
		if err != nil {
			return nil, err
		}
		comma := doc.Token(",")
		if i < len(commas) {
			comma = c.tok(commas[i])
		}
		sep := doc.Line()
		if hasInit {
			sep = doc.HardLine()
		}
		rest = append(rest, comma, sep, d)
	}
	return doc.Concat(
		doc.Group(doc.Concat(c.tok(toks[0]), doc.SpaceDoc(), first, doc.Indent(doc.Concat(rest...)))),
		c.semicolon(n),
	), nil
}

func formatVarDeclarator(c *Context, n *syntax.Node) (doc.Doc, error) {
	target, err := c.nodeDoc(n, 0, "binding")
	if err != nil {
		return nil, err
	}
	eq := n.Token(token.Assign)
	if eq == nil {
		return target, nil
	}
	init, err := c.child(n, 1, "initializer")
	if err != nil {
		return nil, err
	}
	return c.assignment(target, doc.Concat(doc.SpaceDoc(), c.tok(eq)), init)
}

// formatReturn serves return and throw.
func formatReturn(c *Context, n *syntax.Node) (doc.Doc, error) {
	toks := n.Tokens()
	if len(toks) == 0 {
		return nil, malformed(n, "missing keyword")
	}
	kw := toks[0]
	arg := n.NodeAt(0)
	if arg == nil {
		return doc.Concat(c.tok(kw), c.semicolon(n)), nil
	}
	d, err := c.returnArgument(arg)
	if err != nil {
		return nil, err
	}
	return doc.Concat(c.tok(kw), doc.SpaceDoc(), d, c.semicolon(n)), nil
}

// returnArgument: цепочку операторов, которая не влезает, берём в скобки,
// чтобы перенос не попал сразу после return.
// Скобки вокруг такой цепочки снимаем: их ставит сам layout, и второй
// проход должен строить тот же документ.
func (c *Context) returnArgument(arg *syntax.Node) (doc.Doc, error) {
	if inner := wrappedChain(arg); inner != nil {
		arg = inner
	}
	if !isBinaryish(arg) && arg.Kind != syntax.SequenceExpr {
		return c.Node(arg)
	}
	inner, err := c.unindented(arg)
	if err != nil {
		return nil, err
	}
	return doc.Group(doc.Concat(
		doc.IfGroupBreaks(doc.Token("(")),
		doc.Indent(doc.Concat(doc.SoftLine(), inner)),
		doc.SoftLine(),
		doc.IfGroupBreaks(doc.Token(")")),
	)), nil
}

// wrappedChain returns the chain inside `( chain )` when the parentheses
// carry no comments; comments keep the parentheses as written.
func wrappedChain(n *syntax.Node) *syntax.Node {
	if n.Kind != syntax.ParenExpr {
		return nil
	}
	toks, inner := n.Tokens(), n.NodeAt(0)
	if len(toks) != 2 || inner == nil || len(n.Nodes()) != 1 {
		return nil
	}
	if !isBinaryish(inner) && inner.Kind != syntax.SequenceExpr {
		return nil
	}
	for _, t := range toks {
		if t.HasComments() {
			return nil
		}
	}
	return inner
}

func formatIf(c *Context, n *syntax.Node) (doc.Doc, error) {
	kw, err := c.token(n, token.KwIf, "'if'")
	if err != nil {
		return nil, err
	}
	lp, err := c.token(n, token.LParen, "'('")
	if err != nil {
		return nil, err
	}
	rp, err := c.token(n, token.RParen, "')'")
	if err != nil {
		return nil, err
	}
	testNode, err := c.child(n, 0, "condition")
	if err != nil {
		return nil, err
	}
	test, err := c.unindented(testNode)
	if err != nil {
		return nil, err
	}
	cons, err := c.child(n, 1, "statement")
	if err != nil {
		return nil, err
	}
	consDoc, err := c.clause(cons)
	if err != nil {
		return nil, err
	}
	parts := []doc.Doc{
		doc.Group(doc.Concat(
			c.tok(kw), doc.SpaceDoc(), c.tok(lp),
			doc.Indent(doc.Concat(doc.SoftLine(), test)),
			doc.SoftLine(), c.tok(rp),
		)),
		consDoc,
	}
	if els := n.NodeAt(2); els != nil {
		if els.Kind != syntax.ElseClause {
			return nil, malformed(n, "unexpected "+els.Kind.String())
		}
		elseKw, err := c.token(els, token.KwElse, "'else'")
		if err != nil {
			return nil, err
		}
		alt, err := c.child(els, 0, "else statement")
		if err != nil {
			return nil, err
		}
		var altDoc doc.Doc
		if alt.Kind == syntax.IfStmt {
			d, err := c.Node(alt)
			if err != nil {
				return nil, err
			}
			altDoc = doc.Concat(doc.SpaceDoc(), d)
		} else if altDoc, err = c.clause(alt); err != nil {
			return nil, err
		}
		if cons.Kind == syntax.Block {
			parts = append(parts, doc.SpaceDoc())
		} else {
			parts = append(parts, doc.HardLine())
		}
		parts = append(parts, c.tok(elseKw), altDoc)
	}
	return doc.Concat(parts...), nil
}

// clause prints the body of if/else: a block after a space, anything else
// on the same line when it fits and indented on the next one otherwise.
func (c *Context) clause(stmt *syntax.Node) (doc.Doc, error) {
	d, err := c.Node(stmt)
	if err != nil {
		return nil, err
	}
	switch stmt.Kind {
	case syntax.Block:
		return doc.Concat(doc.SpaceDoc(), d), nil
	case syntax.EmptyStmt:
		return d, nil
	}
	return doc.Group(doc.Indent(doc.Concat(doc.Line(), d))), nil
}

func formatFunction(c *Context, n *syntax.Node) (doc.Doc, error) {
	kw, err := c.token(n, token.KwFunction, "'function'")
	if err != nil {
		return nil, err
	}
	params, err := c.child(n, 0, "parameters")
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
	bodyDoc, err := c.Node(body)
	if err != nil {
		return nil, err
	}
	head := []doc.Doc{c.tok(kw), doc.SpaceDoc()}
	if name := n.Token(token.Ident); name != nil {
		head = []doc.Doc{c.tok(kw), doc.SpaceDoc(), c.tok(name)}
	}
	return doc.Concat(doc.Concat(head...), paramsDoc, doc.SpaceDoc(), bodyDoc), nil
}
