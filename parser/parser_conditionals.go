package parser

import "github.com/kyarolang/kyaro/lexer"

// parseIfStatement parses `if cond { ... } [elif cond { ... }]* [else { ... }]`,
// collecting every elif clause into an explicit list on the node rather
// than nesting synthetic else-blocks, matching spec's If(cond,then,elifs,else)
// shape directly.
func (p *Parser) parseIfStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'if'

	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	then := p.parseBlock()

	stmt := &IfStatement{baseStmt: baseStmt{baseNode{tok}}, Cond: cond, Then: then}

	for p.CurrToken.Type == lexer.ELIF_KEY {
		p.advanceRaw()
		elifCond := p.parseExpression(LOWEST)
		if elifCond == nil {
			return nil
		}
		elifBody := p.parseBlock()
		stmt.Elifs = append(stmt.Elifs, ElifClause{Cond: elifCond, Body: elifBody})
	}

	if p.CurrToken.Type == lexer.ELSE_KEY {
		p.advanceRaw()
		stmt.Else = p.parseBlock()
	}

	return stmt
}
