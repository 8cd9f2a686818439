package eval

import (
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

func (ev *Evaluator) evalIfStatement(n *parser.IfStatement, scp *scope.Scope) value.Value {
	cond := ev.Eval(n.Cond, scp)
	if value.IsError(cond) {
		return cond
	}
	if value.Truthy(cond) {
		return ev.Eval(n.Then, scope.New(scp))
	}
	for _, elif := range n.Elifs {
		c := ev.Eval(elif.Cond, scp)
		if value.IsError(c) {
			return c
		}
		if value.Truthy(c) {
			return ev.Eval(elif.Body, scope.New(scp))
		}
	}
	if n.Else != nil {
		return ev.Eval(n.Else, scope.New(scp))
	}
	return value.NullValue
}
