package parser

import "github.com/kyarolang/kyaro/lexer"

// parseStatement dispatches on the current token to the right statement
// production, or falls through to a bare expression / assignment.
func (p *Parser) parseStatement() Statement {
	switch p.CurrToken.Type {
	case lexer.LET_KEY:
		return p.parseLetStatement()
	case lexer.FUNC_KEY:
		return p.parseFunctionStatement()
	case lexer.RETURN_KEY:
		return p.parseReturnStatement()
	case lexer.IF_KEY:
		return p.parseIfStatement()
	case lexer.WHILE_KEY:
		return p.parseWhileStatement()
	case lexer.FOR_KEY:
		return p.parseForStatement()
	case lexer.BREAK_KEY:
		tok := p.CurrToken
		p.advanceRaw()
		return &BreakStatement{baseStmt{baseNode{tok}}}
	case lexer.CONTINUE_KEY:
		tok := p.CurrToken
		p.advanceRaw()
		return &ContinueStatement{baseStmt{baseNode{tok}}}
	case lexer.LEFT_BRACE:
		return p.parseBlock()
	case lexer.CLASS_KEY, lexer.IMPORT_KEY:
		p.addError("%s is reserved and has no defined semantics", p.CurrToken.Literal)
		p.advanceRaw()
		return nil
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parseBlock() *Block {
	tok := p.CurrToken
	if !p.expectAdvance(lexer.LEFT_BRACE) {
		return &Block{baseStmt{baseNode{tok}}, nil}
	}
	block := &Block{baseStmt: baseStmt{baseNode{tok}}}
	for p.CurrToken.Type != lexer.RIGHT_BRACE && p.CurrToken.Type != lexer.EOF_TYPE {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.advanceRaw()
		}
	}
	p.expectAdvance(lexer.RIGHT_BRACE)
	return block
}

func (p *Parser) parseLetStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'let'
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		p.addError("expected identifier after 'let', got %s", p.CurrToken.Type)
		return nil
	}
	name := p.CurrToken.Literal
	p.advanceRaw()
	if !p.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	return &LetStatement{baseStmt{baseNode{tok}}, name, val}
}

var compoundOps = map[lexer.TokenType]string{
	lexer.PLUS_ASSIGN:  "+",
	lexer.MINUS_ASSIGN: "-",
	lexer.MUL_ASSIGN:   "*",
	lexer.DIV_ASSIGN:   "/",
}

// parseExpressionOrAssignStatement parses a full expression; if what
// follows is '=' or a compound-assignment operator, the expression just
// parsed must have been a bare identifier (spec's open question on
// Index/MemberAccess assignment targets, resolved: parse error).
func (p *Parser) parseExpressionOrAssignStatement() Statement {
	tok := p.CurrToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.CurrToken.Type == lexer.ASSIGN_OP {
		ident, ok := expr.(*Identifier)
		if !ok {
			p.addError("invalid assignment target")
			return nil
		}
		p.advanceRaw()
		val := p.parseExpression(LOWEST)
		if val == nil {
			return nil
		}
		return &AssignStatement{baseStmt{baseNode{tok}}, ident.Name, val}
	}

	if op, ok := compoundOps[p.CurrToken.Type]; ok {
		ident, isIdent := expr.(*Identifier)
		if !isIdent {
			p.addError("invalid assignment target")
			return nil
		}
		p.advanceRaw()
		val := p.parseExpression(LOWEST)
		if val == nil {
			return nil
		}
		return &CompoundAssignStatement{baseStmt{baseNode{tok}}, ident.Name, op, val}
	}

	return &ExpressionStatement{baseStmt{baseNode{tok}}, expr}
}
