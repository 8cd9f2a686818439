package parser

import (
	"strconv"

	"github.com/kyarolang/kyaro/lexer"
)

// parseExpression is the Pratt-style precedence-climbing entry point:
// parse one prefix term, then keep folding in infix/postfix operators as
// long as they bind more tightly than minPrec.
func (p *Parser) parseExpression(minPrec precedence) Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for minPrec < p.currPrecedence() {
		switch p.CurrToken.Type {
		case lexer.LEFT_PAREN:
			left = p.parseCall(left)
		case lexer.LEFT_BRACKET:
			left = p.parseIndex(left)
		case lexer.DOT_OP:
			left = p.parseMemberAccess(left)
		default:
			left = p.parseBinary(left)
		}
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() Expression {
	tok := p.CurrToken
	switch tok.Type {
	case lexer.INT_LIT:
		p.advanceRaw()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.addError("invalid integer literal %q", tok.Literal)
			return nil
		}
		return &IntLiteral{baseExpr{baseNode{tok}}, n}
	case lexer.FLOAT_LIT:
		p.advanceRaw()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addError("invalid float literal %q", tok.Literal)
			return nil
		}
		return &FloatLiteral{baseExpr{baseNode{tok}}, f}
	case lexer.STRING_LIT:
		p.advanceRaw()
		return &StringLiteral{baseExpr{baseNode{tok}}, tok.Literal}
	case lexer.TRUE_KEY:
		p.advanceRaw()
		return &BoolLiteral{baseExpr{baseNode{tok}}, true}
	case lexer.FALSE_KEY:
		p.advanceRaw()
		return &BoolLiteral{baseExpr{baseNode{tok}}, false}
	case lexer.NULL_KEY:
		p.advanceRaw()
		return &NullLiteral{baseExpr{baseNode{tok}}}
	case lexer.IDENTIFIER_ID:
		p.advanceRaw()
		return &Identifier{baseExpr{baseNode{tok}}, tok.Literal}
	case lexer.LEFT_PAREN:
		p.advanceRaw()
		inner := p.parseExpression(LOWEST)
		p.expectAdvance(lexer.RIGHT_PAREN)
		return inner
	case lexer.LEFT_BRACKET:
		return p.parseListLiteral()
	case lexer.NOT_KEY:
		p.advanceRaw()
		operand := p.parseExpression(UNARY_PREC)
		return &UnaryOp{baseExpr{baseNode{tok}}, "not", operand}
	case lexer.MINUS_OP:
		p.advanceRaw()
		operand := p.parseExpression(UNARY_PREC)
		return &UnaryOp{baseExpr{baseNode{tok}}, "-", operand}
	case lexer.CLASS_KEY, lexer.IMPORT_KEY:
		p.addError("%s is reserved and has no defined semantics", tok.Literal)
		p.advanceRaw()
		return nil
	case lexer.INVALID_TYPE:
		p.addLexError("unexpected character %q", tok.Literal)
		return nil
	default:
		p.addError("unexpected token %s (%q)", tok.Type, tok.Literal)
		return nil
	}
}

func (p *Parser) parseBinary(left Expression) Expression {
	tok := p.CurrToken
	prec := p.currPrecedence()
	p.advanceRaw()

	// '**' is right-associative: recurse at one level below its own
	// precedence so a chain like 2 ** 3 ** 2 groups as 2 ** (3 ** 2).
	nextMin := prec
	if tok.Type == lexer.POW_OP {
		nextMin = prec - 1
	}

	right := p.parseExpression(nextMin)
	if right == nil {
		return nil
	}
	return &BinaryOp{baseExpr{baseNode{tok}}, left, string(tok.Type), right}
}

func (p *Parser) parseCall(callee Expression) Expression {
	tok := p.CurrToken
	p.advanceRaw() // consume '('
	args := []Expression{}
	for p.CurrToken.Type != lexer.RIGHT_PAREN {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advanceRaw()
		} else {
			break
		}
	}
	if !p.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return &Call{baseExpr{baseNode{tok}}, callee, args}
}

func (p *Parser) parseIndex(obj Expression) Expression {
	tok := p.CurrToken
	p.advanceRaw() // consume '['
	idx := p.parseExpression(LOWEST)
	if idx == nil {
		return nil
	}
	if !p.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &Index{baseExpr{baseNode{tok}}, obj, idx}
}

func (p *Parser) parseMemberAccess(obj Expression) Expression {
	tok := p.CurrToken
	p.advanceRaw() // consume '.'
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		p.addError("expected member name after '.', got %s", p.CurrToken.Type)
		return nil
	}
	member := p.CurrToken.Literal
	p.advanceRaw()
	return &MemberAccess{baseExpr{baseNode{tok}}, obj, member}
}

func (p *Parser) parseListLiteral() Expression {
	tok := p.CurrToken
	p.advanceRaw() // consume '['
	elems := []Expression{}
	for p.CurrToken.Type != lexer.RIGHT_BRACKET {
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		elems = append(elems, elem)
		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advanceRaw()
		} else {
			break
		}
	}
	if !p.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ListLiteral{baseExpr{baseNode{tok}}, elems}
}
