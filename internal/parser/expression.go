package parser

import (
	"quill/internal/source"
	"quill/internal/syntax"
	"quill/internal/token"
)

// Разбор выражений не сообщает ошибок: неудача означает откат и Unknown
// на уровне оператора.

func (p *Parser) parseExpression() (*syntax.Node, bool) {
	first, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}
	seq := syntax.New(syntax.SequenceExpr, syntax.Sub(first))
	for p.at(token.Comma) {
		seq.Append(p.advance())
		next, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		seq.Append(syntax.Sub(next))
	}
	return seq, true
}

func (p *Parser) parseAssign() (*syntax.Node, bool) {
	if arrow, ok := p.tryArrow(); ok {
		return arrow, true
	}
	lhs, ok := p.parseConditional()
	if !ok {
		return nil, false
	}
	if !p.peek().Kind.IsAssign() {
		return lhs, true
	}
	op := p.advance()
	rhs, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	return syntax.New(syntax.AssignExpr, syntax.Sub(lhs), op, syntax.Sub(rhs)), true
}

// tryArrow: `x => ...` или `(params) => ...`; при неудаче позиция откатывается.
func (p *Parser) tryArrow() (*syntax.Node, bool) {
	m := p.mark()
	var params *syntax.Node
	switch tok := p.peek(); {
	case tok.Kind == token.Ident && !isReserved(tok) && p.peekAt(1).Kind == token.FatArrow:
		params = syntax.New(syntax.Name, p.advance())
	case tok.Kind == token.LParen:
		var ok bool
		if params, ok = p.parseParamList(); !ok {
			p.reset(m)
			return nil, false
		}
	default:
		return nil, false
	}
	if !p.at(token.FatArrow) || p.peek().NewlineBefore() {
		p.reset(m)
		return nil, false
	}
	arrow := syntax.New(syntax.ArrowFunc, syntax.Sub(params), p.advance())
	var body *syntax.Node
	var ok bool
	if p.at(token.LBrace) {
		body, ok = p.parseBlock()
	} else {
		body, ok = p.parseAssign()
	}
	if !ok {
		p.reset(m)
		return nil, false
	}
	arrow.Append(syntax.Sub(body))
	return arrow, true
}

func (p *Parser) parseConditional() (*syntax.Node, bool) {
	test, ok := p.parseBinary(1)
	if !ok || !p.at(token.Question) {
		return test, ok
	}
	cond := syntax.New(syntax.ConditionalExpr, syntax.Sub(test), p.advance())
	cons, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	cond.Append(syntax.Sub(cons))
	colon, ok := p.eat(token.Colon)
	if !ok {
		return nil, false
	}
	cond.Append(colon)
	alt, ok := p.parseAssign()
	if !ok {
		return nil, false
	}
	cond.Append(syntax.Sub(alt))
	return cond, true
}

// parseBinary: precedence climbing; цепочки одного уровня растут влево в цикле.
func (p *Parser) parseBinary(minPrec int) (*syntax.Node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		kind := p.peek().Kind
		prec, right := binaryPrec(kind)
		if prec == 0 || prec < minPrec {
			return left, true
		}
		op := p.advance()
		next := prec + 1
		if right {
			next = prec
		}
		rhs, ok := p.parseBinary(next)
		if !ok {
			return nil, false
		}
		nodeKind := syntax.BinaryExpr
		if isLogical(kind) {
			nodeKind = syntax.LogicalExpr
		}
		left = syntax.New(nodeKind, syntax.Sub(left), op, syntax.Sub(rhs))
	}
}

func (p *Parser) parseUnary() (*syntax.Node, bool) {
	switch p.peek().Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus, token.KwTypeof, token.KwVoid, token.KwDelete:
		op := p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return syntax.New(syntax.UnaryExpr, op, syntax.Sub(arg)), true
	case token.PlusPlus, token.MinusMinus:
		op := p.advance()
		arg, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return syntax.New(syntax.UpdateExpr, op, syntax.Sub(arg)), true
	}
	expr, ok := p.parseCallMember()
	if !ok {
		return nil, false
	}
	if p.atOr(token.PlusPlus, token.MinusMinus) && !p.peek().NewlineBefore() {
		return syntax.New(syntax.UpdateExpr, syntax.Sub(expr), p.advance()), true
	}
	return expr, true
}

func (p *Parser) parseCallMember() (*syntax.Node, bool) {
	var expr *syntax.Node
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNew()
	} else {
		expr, ok = p.parsePrimary()
	}
	if !ok {
		return nil, false
	}
	return p.parseChain(expr, true)
}

// parseChain разбирает .name, ?.name, [expr] и (args) после выражения.
func (p *Parser) parseChain(expr *syntax.Node, allowCall bool) (*syntax.Node, bool) {
	for {
		switch p.peek().Kind {
		case token.Dot:
			dot := p.advance()
			member := syntax.New(syntax.MemberExpr, syntax.Sub(expr), dot)
			if !p.parsePropertyName(member) {
				return nil, false
			}
			expr = member
		case token.QuestionDot:
			if !allowCall {
				return expr, true
			}
			qd := p.advance()
			switch p.peek().Kind {
			case token.LParen:
				args, ok := p.parseArgs()
				if !ok {
					return nil, false
				}
				expr = syntax.New(syntax.CallExpr, syntax.Sub(expr), qd, syntax.Sub(args))
			case token.LBracket:
				index, ok := p.parseIndex(syntax.New(syntax.IndexExpr, syntax.Sub(expr), qd))
				if !ok {
					return nil, false
				}
				expr = index
			default:
				member := syntax.New(syntax.MemberExpr, syntax.Sub(expr), qd)
				if !p.parsePropertyName(member) {
					return nil, false
				}
				expr = member
			}
		case token.LBracket:
			index, ok := p.parseIndex(syntax.New(syntax.IndexExpr, syntax.Sub(expr)))
			if !ok {
				return nil, false
			}
			expr = index
		case token.LParen:
			if !allowCall {
				return expr, true
			}
			args, ok := p.parseArgs()
			if !ok {
				return nil, false
			}
			expr = syntax.New(syntax.CallExpr, syntax.Sub(expr), syntax.Sub(args))
		default:
			return expr, true
		}
	}
}

// parsePropertyName: имя (включая ключевые слова) или #private.
func (p *Parser) parsePropertyName(member *syntax.Node) bool {
	if p.at(token.Hash) && p.peekAt(1).IsName() {
		member.Append(p.advance())
	}
	if !p.peek().IsName() {
		return false
	}
	member.Append(p.advance())
	return true
}

func (p *Parser) parseIndex(index *syntax.Node) (*syntax.Node, bool) {
	index.Append(p.advance()) // [
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	index.Append(syntax.Sub(expr))
	rb, ok := p.eat(token.RBracket)
	if !ok {
		return nil, false
	}
	index.Append(rb)
	return index, true
}

// parseNew: `new Callee.path(args)`; вызовы внутри callee не допускаются.
func (p *Parser) parseNew() (*syntax.Node, bool) {
	kw := p.advance()
	var callee *syntax.Node
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNew()
	} else {
		callee, ok = p.parsePrimary()
	}
	if !ok {
		return nil, false
	}
	if callee, ok = p.parseChain(callee, false); !ok {
		return nil, false
	}
	n := syntax.New(syntax.NewExpr, kw, syntax.Sub(callee))
	if p.at(token.LParen) {
		args, ok := p.parseArgs()
		if !ok {
			return nil, false
		}
		n.Append(syntax.Sub(args))
	}
	return n, true
}

// parseArgs: ( [arg {, arg} [,]] )
func (p *Parser) parseArgs() (*syntax.Node, bool) {
	args := syntax.New(syntax.ArgList, p.advance())
	for !p.at(token.RParen) {
		arg, ok := p.parseElement()
		if !ok {
			return nil, false
		}
		args.Append(syntax.Sub(arg))
		comma, ok := p.eat(token.Comma)
		if !ok {
			break
		}
		args.Append(comma)
	}
	rp, ok := p.eat(token.RParen)
	if !ok {
		return nil, false
	}
	args.Append(rp)
	return args, true
}

// parseElement: элемент списка: `...expr` или выражение присваивания.
func (p *Parser) parseElement() (*syntax.Node, bool) {
	if p.at(token.DotDotDot) {
		spread := syntax.New(syntax.SpreadElement, p.advance())
		arg, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		spread.Append(syntax.Sub(arg))
		return spread, true
	}
	return p.parseAssign()
}

func (p *Parser) parsePrimary() (*syntax.Node, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		if isReserved(tok) {
			return nil, false
		}
		return syntax.New(syntax.Name, p.advance()), true
	case token.NumberLit, token.StringLit, token.RegexLit,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis:
		return syntax.New(syntax.Literal, p.advance()), true
	case token.TemplateLit:
		return syntax.New(syntax.TemplateLiteral, p.advance()), true
	case token.LParen:
		paren := syntax.New(syntax.ParenExpr, p.advance())
		inner, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		paren.Append(syntax.Sub(inner))
		rp, ok := p.eat(token.RParen)
		if !ok {
			return nil, false
		}
		paren.Append(rp)
		return paren, true
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseObject()
	case token.KwFunction:
		return p.parseFunction(syntax.FunctionExpr)
	}
	return nil, false
}

func (p *Parser) parseArray() (*syntax.Node, bool) {
	arr := syntax.New(syntax.ArrayLit, p.advance())
	for !p.at(token.RBracket) {
		if p.at(token.Comma) {
			sp := p.peek().Span
			hole := syntax.New(syntax.Hole)
			hole.Span = source.Span{File: sp.File, Start: sp.Start, End: sp.Start}
			arr.Append(syntax.Sub(hole))
			arr.Append(p.advance())
			continue
		}
		elem, ok := p.parseElement()
		if !ok {
			return nil, false
		}
		arr.Append(syntax.Sub(elem))
		comma, ok := p.eat(token.Comma)
		if !ok {
			break
		}
		arr.Append(comma)
	}
	rb, ok := p.eat(token.RBracket)
	if !ok {
		return nil, false
	}
	arr.Append(rb)
	return arr, true
}

func (p *Parser) parseObject() (*syntax.Node, bool) {
	obj := syntax.New(syntax.ObjectLit, p.advance())
	for !p.at(token.RBrace) {
		prop, ok := p.parseProperty()
		if !ok {
			return nil, false
		}
		obj.Append(syntax.Sub(prop))
		comma, ok := p.eat(token.Comma)
		if !ok {
			break
		}
		obj.Append(comma)
	}
	rb, ok := p.eat(token.RBrace)
	if !ok {
		return nil, false
	}
	obj.Append(rb)
	return obj, true
}

// parseProperty: `...x`, `key: value`, `key(params) {}`, `key`, `key = default`,
// `[computed]: value`. Ключ хранится токенами прямо в Property.
func (p *Parser) parseProperty() (*syntax.Node, bool) {
	if p.at(token.DotDotDot) {
		return p.parseElement()
	}
	prop := syntax.New(syntax.Property)
	shorthand := false
	switch tok := p.peek(); {
	case tok.Kind == token.LBracket:
		prop.Append(p.advance())
		key, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		prop.Append(syntax.Sub(key))
		rb, ok := p.eat(token.RBracket)
		if !ok {
			return nil, false
		}
		prop.Append(rb)
	case tok.IsName():
		shorthand = tok.Kind == token.Ident && !isReserved(tok)
		prop.Append(p.advance())
	case tok.Kind == token.StringLit || tok.Kind == token.NumberLit:
		prop.Append(p.advance())
	default:
		return nil, false
	}

	switch p.peek().Kind {
	case token.Colon:
		prop.Append(p.advance())
		value, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		prop.Append(syntax.Sub(value))
	case token.LParen:
		params, ok := p.parseParamList()
		if !ok || !p.at(token.LBrace) {
			return nil, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		prop.Append(syntax.Sub(params))
		prop.Append(syntax.Sub(body))
	case token.Assign:
		if !shorthand {
			return nil, false
		}
		prop.Append(p.advance())
		value, ok := p.parseAssign()
		if !ok {
			return nil, false
		}
		prop.Append(syntax.Sub(value))
	default:
		if !shorthand {
			return nil, false
		}
	}
	return prop, true
}

// parseParamList: ( [param {, param} [,]] ), param = target [= default] | ...target
func (p *Parser) parseParamList() (*syntax.Node, bool) {
	list := syntax.New(syntax.ParamList, p.advance())
	for !p.at(token.RParen) {
		var param *syntax.Node
		if p.at(token.DotDotDot) {
			param = syntax.New(syntax.SpreadElement, p.advance())
			target, ok := p.parseBindingTarget()
			if !ok {
				return nil, false
			}
			param.Append(syntax.Sub(target))
		} else {
			target, ok := p.parseBindingTarget()
			if !ok {
				return nil, false
			}
			param = syntax.New(syntax.Param, syntax.Sub(target))
			if eq, ok := p.eat(token.Assign); ok {
				def, ok := p.parseAssign()
				if !ok {
					return nil, false
				}
				param.Append(eq)
				param.Append(syntax.Sub(def))
			}
		}
		list.Append(syntax.Sub(param))
		comma, ok := p.eat(token.Comma)
		if !ok {
			break
		}
		list.Append(comma)
	}
	rp, ok := p.eat(token.RParen)
	if !ok {
		return nil, false
	}
	list.Append(rp)
	return list, true
}
