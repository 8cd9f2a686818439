package parser

import (
	"github.com/kyarolang/kyaro/lexer"
	"github.com/kyarolang/kyaro/value"
)

// Parser is a two-token-lookahead recursive-descent / Pratt parser. It
// never panics on malformed input: every failure is appended to Errors and
// parsing continues on a best-effort basis, mirroring the teacher's
// error-collecting style.
type Parser struct {
	Lex        lexer.Lexer
	CurrToken  lexer.Token
	NextToken  lexer.Token
	Errors     []*value.Error
	LastErrLoc [2]int
}

// precedence levels, lowest to highest, exactly spec's table.
type precedence int

const (
	LOWEST precedence = iota
	OR_PREC
	AND_PREC
	EQUALITY_PREC
	COMPARISON_PREC
	ADDITIVE_PREC
	MULTIPLICATIVE_PREC
	POWER_PREC
	UNARY_PREC
	POSTFIX_PREC
)

var precedences = map[lexer.TokenType]precedence{
	lexer.OR_KEY:    OR_PREC,
	lexer.AND_KEY:   AND_PREC,
	lexer.EQ_OP:     EQUALITY_PREC,
	lexer.NE_OP:     EQUALITY_PREC,
	lexer.LT_OP:     COMPARISON_PREC,
	lexer.GT_OP:     COMPARISON_PREC,
	lexer.LE_OP:     COMPARISON_PREC,
	lexer.GE_OP:     COMPARISON_PREC,
	lexer.PLUS_OP:   ADDITIVE_PREC,
	lexer.MINUS_OP:  ADDITIVE_PREC,
	lexer.MUL_OP:    MULTIPLICATIVE_PREC,
	lexer.DIV_OP:    MULTIPLICATIVE_PREC,
	lexer.MOD_OP:    MULTIPLICATIVE_PREC,
	lexer.POW_OP:    POWER_PREC,
	lexer.LEFT_PAREN:   POSTFIX_PREC,
	lexer.LEFT_BRACKET: POSTFIX_PREC,
	lexer.DOT_OP:       POSTFIX_PREC,
}

func NewParser(src string) *Parser {
	p := &Parser{Lex: lexer.NewLexer(src)}
	p.advanceRaw()
	p.advanceRaw()
	return p
}

// advanceRaw pulls the next raw token, silently skipping NEWLINE and ';':
// Kyaro's grammar treats both as a soft separator between statements, never
// as syntax the parser itself needs to see (spec's NEWLINE handling).
func (p *Parser) advanceRaw() {
	p.CurrToken = p.NextToken
	for {
		p.NextToken = p.Lex.NextToken()
		if p.NextToken.Type != lexer.NEWLINE_TYPE && p.NextToken.Type != lexer.SEMICOLON_DELIM {
			break
		}
	}
}

// addError records a syntactic failure, formatted per spec as
// "Error at line L, column C: <message>" via value.NewParseError.
func (p *Parser) addError(format string, args ...interface{}) {
	p.Errors = append(p.Errors, value.NewParseError(p.CurrToken.Line, p.CurrToken.Column, format, args...))
	p.LastErrLoc = [2]int{p.CurrToken.Line, p.CurrToken.Column}
}

// addLexError records a failure that originated in the lexer (an
// INVALID_TYPE token), formatted the same way but tagged value.LexKind.
func (p *Parser) addLexError(format string, args ...interface{}) {
	p.Errors = append(p.Errors, value.NewLexError(p.CurrToken.Line, p.CurrToken.Column, format, args...))
	p.LastErrLoc = [2]int{p.CurrToken.Line, p.CurrToken.Column}
}

func (p *Parser) HasErrors() bool           { return len(p.Errors) > 0 }
func (p *Parser) GetErrors() []*value.Error { return p.Errors }

// expectAdvance checks CurrToken, advances past it, and records an error
// if the type didn't match.
func (p *Parser) expectAdvance(t lexer.TokenType) bool {
	if p.CurrToken.Type != t {
		p.addError("expected %s, got %s (%q)", t, p.CurrToken.Type, p.CurrToken.Literal)
		return false
	}
	p.advanceRaw()
	return true
}

func (p *Parser) currPrecedence() precedence {
	if pr, ok := precedences[p.CurrToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// Parse consumes the whole token stream as one Program: zero or more
// statements, in order.
func (p *Parser) Parse() *Program {
	prog := &Program{baseStmt: baseStmt{baseNode{p.CurrToken}}}
	for p.CurrToken.Type != lexer.EOF_TYPE {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			// avoid an infinite loop on an unparseable token
			p.advanceRaw()
		}
	}
	return prog
}
