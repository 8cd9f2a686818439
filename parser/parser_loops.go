package parser

import "github.com/kyarolang/kyaro/lexer"

// parseWhileStatement parses `while cond { body }`. Unlike the teacher,
// there is no required parenthesization and no comma-separated multi
// -condition form: spec's while has exactly one condition expression.
func (p *Parser) parseWhileStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'while'
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	return &WhileStatement{baseStmt{baseNode{tok}}, cond, body}
}

// parseForStatement parses `for name in iterable { body }`.
func (p *Parser) parseForStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'for'
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		p.addError("expected loop variable name, got %s", p.CurrToken.Type)
		return nil
	}
	varName := p.CurrToken.Literal
	p.advanceRaw()
	if !p.expectAdvance(lexer.IN_KEY) {
		return nil
	}
	iterable := p.parseExpression(LOWEST)
	if iterable == nil {
		return nil
	}
	body := p.parseBlock()
	return &ForStatement{baseStmt{baseNode{tok}}, varName, iterable, body}
}
