package eval

import (
	"github.com/kyarolang/kyaro/function"
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

// evalProgram runs each top-level statement in the global frame. A
// control-flow signal escaping all the way here is a bug in the source
// (return/break/continue outside any function or loop) and is reported
// as a RuntimeError at evalReturnStatement/evalBreakStatement/
// evalContinueStatement instead, so Program never itself sees one.
func (ev *Evaluator) evalProgram(n *parser.Program, scp *scope.Scope) value.Value {
	var result value.Value = value.NullValue
	for _, stmt := range n.Statements {
		result = ev.Eval(stmt, scp)
		if value.IsError(result) {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalBlock(n *parser.Block, scp *scope.Scope) value.Value {
	var result value.Value = value.NullValue
	for _, stmt := range n.Statements {
		result = ev.Eval(stmt, scp)
		if value.IsError(result) || value.IsSignal(result) {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalLetStatement(n *parser.LetStatement, scp *scope.Scope) value.Value {
	val := ev.Eval(n.Value, scp)
	if value.IsError(val) {
		return val
	}
	scp.Define(n.Name, val)
	return value.NullValue
}

func (ev *Evaluator) evalAssignStatement(n *parser.AssignStatement, scp *scope.Scope) value.Value {
	val := ev.Eval(n.Value, scp)
	if value.IsError(val) {
		return val
	}
	if !scp.Set(n.Name, val) {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "undefined name %q", n.Name)
	}
	return value.NullValue
}

func (ev *Evaluator) evalCompoundAssignStatement(n *parser.CompoundAssignStatement, scp *scope.Scope) value.Value {
	current, ok := scp.Get(n.Name)
	if !ok {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "undefined name %q", n.Name)
	}
	rhs := ev.Eval(n.Value, scp)
	if value.IsError(rhs) {
		return rhs
	}
	line, col := n.Pos()
	result := applyBinaryOp(n.Operator, current, rhs, line, col)
	if value.IsError(result) {
		return result
	}
	scp.Set(n.Name, result)
	return value.NullValue
}

func (ev *Evaluator) evalFunctionStatement(n *parser.FunctionStatement, scp *scope.Scope) value.Value {
	fn := &function.Function{Name: n.Name, Params: n.Params, Body: n.Body, Scp: scp}
	scp.Define(n.Name, fn)
	return value.NullValue
}

func (ev *Evaluator) evalReturnStatement(n *parser.ReturnStatement, scp *scope.Scope) value.Value {
	if ev.FuncDepth == 0 {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "'return' outside a function")
	}
	if n.Value == nil {
		return &value.ReturnSignal{Val: value.NullValue}
	}
	val := ev.Eval(n.Value, scp)
	if value.IsError(val) {
		return val
	}
	return &value.ReturnSignal{Val: val}
}

func (ev *Evaluator) evalBreakStatement(n *parser.BreakStatement) value.Value {
	if ev.LoopDepth == 0 {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "'break' outside a loop")
	}
	return value.Break
}

func (ev *Evaluator) evalContinueStatement(n *parser.ContinueStatement) value.Value {
	if ev.LoopDepth == 0 {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "'continue' outside a loop")
	}
	return value.Continue
}
