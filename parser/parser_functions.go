package parser

import "github.com/kyarolang/kyaro/lexer"

// parseFunctionStatement parses `func name(p1, p2, ...) { body }`.
func (p *Parser) parseFunctionStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'func'
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		p.addError("expected function name, got %s", p.CurrToken.Type)
		return nil
	}
	name := p.CurrToken.Literal
	p.advanceRaw()

	if !p.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	var params []*Identifier
	for p.CurrToken.Type != lexer.RIGHT_PAREN {
		if p.CurrToken.Type != lexer.IDENTIFIER_ID {
			p.addError("expected parameter name, got %s", p.CurrToken.Type)
			return nil
		}
		params = append(params, &Identifier{baseExpr{baseNode{p.CurrToken}}, p.CurrToken.Literal})
		p.advanceRaw()
		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advanceRaw()
		} else {
			break
		}
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	body := p.parseBlock()
	return &FunctionStatement{baseStmt{baseNode{tok}}, name, params, body}
}

// parseReturnStatement parses `return` or `return expr`. A bare `return`
// (next token is '}' or EOF) yields a nil Value, which the evaluator
// treats as returning null. Newlines are skipped by the token cursor, so
// an expression on the following line is parsed as the return value.
func (p *Parser) parseReturnStatement() Statement {
	tok := p.CurrToken
	p.advanceRaw() // consume 'return'

	if p.CurrToken.Type == lexer.RIGHT_BRACE || p.CurrToken.Type == lexer.EOF_TYPE {
		return &ReturnStatement{baseStmt{baseNode{tok}}, nil}
	}
	val := p.parseExpression(LOWEST)
	return &ReturnStatement{baseStmt{baseNode{tok}}, val}
}
