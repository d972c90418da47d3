package parser

import (
	"quill/internal/diag"
	"quill/internal/syntax"
	"quill/internal/token"
)

// parseModule: основной цикл верхнего уровня: пока не EOF: parseStatement.
func (p *Parser) parseModule() *syntax.Node {
	mod := syntax.New(syntax.Module)
	for !p.at(token.EOF) {
		mod.Append(syntax.Sub(p.parseStatement(true)))
	}
	mod.Append(p.advance())
	return mod
}

// parseStatement пробует распознать оператор целиком; если не вышло,
// откатывается и забирает его как Unknown.
func (p *Parser) parseStatement(top bool) *syntax.Node {
	m := p.mark()
	if stmt, ok := p.tryStatement(); ok {
		return stmt
	}
	p.reset(m)
	return p.parseUnknown(top)
}

func (p *Parser) tryStatement() (*syntax.Node, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		return syntax.New(syntax.EmptyStmt, p.advance()), true
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarDecl()
	case token.KwFunction:
		return p.parseFunction(syntax.FunctionDecl)
	case token.KwIf:
		return p.parseIf()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwThrow:
		return p.parseThrow()
	case token.Ident:
		if reservedWords[tok.Text] || (statementStarters[tok.Text] && !p.isExpressionContinuation(1)) {
			return nil, false
		}
	}
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	stmt := syntax.New(syntax.ExprStmt, syntax.Sub(expr))
	return stmt, p.endStatement(stmt)
}

// isExpressionContinuation: `type = 1`, `type.x`: идентификатор, а не начало конструкции.
func (p *Parser) isExpressionContinuation(n int) bool {
	next := p.peekAt(n)
	if next.NewlineBefore() || next.Kind.IsAssign() {
		return true
	}
	switch next.Kind {
	case token.Dot, token.QuestionDot, token.LParen, token.LBracket, token.RBrace,
		token.Semicolon, token.Comma, token.EOF, token.PlusPlus, token.MinusMinus:
		return true
	case token.Lt:
		// type<T>: скорее обобщение, чем сравнение
		return false
	}
	prec, _ := binaryPrec(next.Kind)
	return prec > 0
}

// endStatement: ';' либо автоматическая вставка (ASI): '}', EOF или перевод строки.
func (p *Parser) endStatement(stmt *syntax.Node) bool {
	if semi, ok := p.eat(token.Semicolon); ok {
		stmt.Append(semi)
		return true
	}
	tok := p.peek()
	return tok.Kind == token.RBrace || tok.Kind == token.EOF || tok.NewlineBefore()
}

func (p *Parser) parseBlock() (*syntax.Node, bool) {
	block := syntax.New(syntax.Block, p.advance())
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return nil, false
		}
		block.Append(syntax.Sub(p.parseStatement(false)))
	}
	block.Append(p.advance())
	return block, true
}

func (p *Parser) parseVarDecl() (*syntax.Node, bool) {
	decl := syntax.New(syntax.VarDecl, p.advance())
	for {
		target, ok := p.parseBindingTarget()
		if !ok {
			return nil, false
		}
		declarator := syntax.New(syntax.VarDeclarator, syntax.Sub(target))
		if eq, ok := p.eat(token.Assign); ok {
			init, ok := p.parseAssign()
			if !ok {
				return nil, false
			}
			declarator.Append(eq)
			declarator.Append(syntax.Sub(init))
		}
		decl.Append(syntax.Sub(declarator))
		comma, ok := p.eat(token.Comma)
		if !ok {
			break
		}
		decl.Append(comma)
	}
	return decl, p.endStatement(decl)
}

// parseBindingTarget: имя или деструктуризация ({...} / [...]).
func (p *Parser) parseBindingTarget() (*syntax.Node, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.Ident:
		if isReserved(tok) {
			return nil, false
		}
		return syntax.New(syntax.Name, p.advance()), true
	case token.LBrace:
		return p.parseObject()
	case token.LBracket:
		return p.parseArray()
	}
	return nil, false
}

func (p *Parser) parseIf() (*syntax.Node, bool) {
	stmt := syntax.New(syntax.IfStmt, p.advance())
	lp, ok := p.eat(token.LParen)
	if !ok {
		return nil, false
	}
	stmt.Append(lp)
	test, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	stmt.Append(syntax.Sub(test))
	rp, ok := p.eat(token.RParen)
	if !ok {
		return nil, false
	}
	stmt.Append(rp)
	cons, ok := p.tryStatement()
	if !ok {
		return nil, false
	}
	stmt.Append(syntax.Sub(cons))
	if p.at(token.KwElse) {
		clause := syntax.New(syntax.ElseClause, p.advance())
		alt, ok := p.tryStatement()
		if !ok {
			return nil, false
		}
		clause.Append(syntax.Sub(alt))
		stmt.Append(syntax.Sub(clause))
	}
	return stmt, true
}

func (p *Parser) parseReturn() (*syntax.Node, bool) {
	stmt := syntax.New(syntax.ReturnStmt, p.advance())
	next := p.peek()
	if next.Kind != token.Semicolon && next.Kind != token.RBrace && next.Kind != token.EOF && !next.NewlineBefore() {
		arg, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		stmt.Append(syntax.Sub(arg))
	}
	return stmt, p.endStatement(stmt)
}

func (p *Parser) parseThrow() (*syntax.Node, bool) {
	stmt := syntax.New(syntax.ThrowStmt, p.advance())
	if p.peek().NewlineBefore() {
		return nil, false
	}
	arg, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	stmt.Append(syntax.Sub(arg))
	return stmt, p.endStatement(stmt)
}

// parseFunction: `function name(params) { body }`; для выражения имя необязательно.
func (p *Parser) parseFunction(kind syntax.Kind) (*syntax.Node, bool) {
	fn := syntax.New(kind, p.advance())
	if tok := p.peek(); tok.Kind == token.Ident && !isReserved(tok) {
		fn.Append(p.advance())
	} else if kind == syntax.FunctionDecl {
		return nil, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil, false
	}
	fn.Append(syntax.Sub(params))
	if !p.at(token.LBrace) {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	fn.Append(syntax.Sub(body))
	return fn, true
}

// parseUnknown забирает нераспознанный оператор как есть. Граница:
//   - ';' на нулевой глубине (съедается);
//   - '}' на нулевой глубине (закрывает внешний блок, не съедается);
//   - перевод строки после закрытой '}' или перед началом другой конструкции;
//   - EOF.
//
// Ошибки незакрытых скобок сообщаются только на верхнем уровне: внутри
// блока разбор ещё может откатиться.
func (p *Parser) parseUnknown(top bool) *syntax.Node {
	n := syntax.New(syntax.Unknown)
	var open []token.Token
	closedBrace := false
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			if top && len(open) > 0 {
				p.err(diag.SynUnclosedDelimiter, open[len(open)-1].Span, "unclosed '"+open[len(open)-1].Text+"'")
			}
			break
		}
		if len(open) == 0 && len(n.Children) > 0 && tok.NewlineBefore() &&
			(closedBrace || p.startsStatement(tok)) {
			break
		}
		closedBrace = false
		switch tok.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			open = append(open, tok)
		case token.RParen, token.RBracket, token.RBrace:
			if len(open) == 0 {
				if tok.Kind == token.RBrace && !top && len(n.Children) > 0 {
					return n
				}
				if top {
					p.err(diag.SynUnexpectedToken, tok.Span, "unexpected '"+tok.Text+"'")
				}
				break
			}
			open = open[:len(open)-1]
			closedBrace = tok.Kind == token.RBrace && len(open) == 0
		case token.Semicolon:
			if len(open) == 0 {
				n.Append(p.advance())
				return p.noteUnknown(n, top)
			}
		}
		n.Append(p.advance())
	}
	return p.noteUnknown(n, top)
}

func (p *Parser) startsStatement(tok token.Token) bool {
	switch tok.Kind {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction, token.KwIf, token.KwReturn, token.KwThrow:
		return true
	case token.Ident:
		return statementStarters[tok.Text]
	}
	return false
}

func (p *Parser) noteUnknown(n *syntax.Node, top bool) *syntax.Node {
	if top && p.opts.NoteUnknown && len(n.Children) > 0 {
		p.report(diag.SynUnknownStatement, diag.SevInfo, n.Span, "statement is kept verbatim")
	}
	return n
}
