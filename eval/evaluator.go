// Package eval walks Kyaro's AST and produces value.Value results,
// threading errors and control-flow signals through ordinary return
// values instead of Go panics.
package eval

import (
	"github.com/kyarolang/kyaro/function"
	"github.com/kyarolang/kyaro/intrinsics"
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

// Evaluator holds the global frame and tracks how many function calls and
// loops are currently active, so a stray `return`/`break`/`continue` at
// the top level can be reported as a RuntimeError instead of silently
// propagating out of Eval.
type Evaluator struct {
	Scp       *scope.Scope
	FuncDepth int
	LoopDepth int
}

// NewEvaluator builds the global frame and installs every registered
// intrinsic directly into it, so Call evaluation never special-cases
// builtins: a name resolves to a *value.Intrinsic the same way it
// resolves to a *function.Function.
func NewEvaluator() *Evaluator {
	global := scope.New(nil)
	for _, in := range intrinsics.Registry {
		global.Define(in.Name, in)
	}
	return &Evaluator{Scp: global}
}

// Eval dispatches on the concrete node type. It never panics: any
// failure becomes a *value.Error returned like any other value.
func (ev *Evaluator) Eval(node parser.Node, scp *scope.Scope) value.Value {
	switch n := node.(type) {
	case *parser.Program:
		return ev.evalProgram(n, scp)
	case *parser.Block:
		return ev.evalBlock(n, scp)
	case *parser.ExpressionStatement:
		return ev.Eval(n.Expr, scp)
	case *parser.LetStatement:
		return ev.evalLetStatement(n, scp)
	case *parser.AssignStatement:
		return ev.evalAssignStatement(n, scp)
	case *parser.CompoundAssignStatement:
		return ev.evalCompoundAssignStatement(n, scp)
	case *parser.FunctionStatement:
		return ev.evalFunctionStatement(n, scp)
	case *parser.ReturnStatement:
		return ev.evalReturnStatement(n, scp)
	case *parser.IfStatement:
		return ev.evalIfStatement(n, scp)
	case *parser.WhileStatement:
		return ev.evalWhileStatement(n, scp)
	case *parser.ForStatement:
		return ev.evalForStatement(n, scp)
	case *parser.BreakStatement:
		return ev.evalBreakStatement(n)
	case *parser.ContinueStatement:
		return ev.evalContinueStatement(n)
	case *parser.IntLiteral:
		return value.Int{Val: n.Val}
	case *parser.FloatLiteral:
		return value.Float{Val: n.Val}
	case *parser.StringLiteral:
		return value.Str{Val: n.Val}
	case *parser.BoolLiteral:
		return value.Bool{Val: n.Val}
	case *parser.NullLiteral:
		return value.NullValue
	case *parser.Identifier:
		return ev.evalIdentifier(n, scp)
	case *parser.ListLiteral:
		return ev.evalListLiteral(n, scp)
	case *parser.BinaryOp:
		return ev.evalBinaryOp(n, scp)
	case *parser.UnaryOp:
		return ev.evalUnaryOp(n, scp)
	case *parser.Call:
		return ev.evalCall(n, scp)
	case *parser.Index:
		return ev.evalIndex(n, scp)
	case *parser.MemberAccess:
		return ev.evalMemberAccess(n, scp)
	default:
		line, col := node.Pos()
		return value.NewRuntimeErrorAt(line, col, "cannot evaluate node of type %T", node)
	}
}

func (ev *Evaluator) evalIdentifier(n *parser.Identifier, scp *scope.Scope) value.Value {
	if val, ok := scp.Get(n.Name); ok {
		return val
	}
	line, col := n.Pos()
	return value.NewRuntimeErrorAt(line, col, "undefined name %q", n.Name)
}

func (ev *Evaluator) evalListLiteral(n *parser.ListLiteral, scp *scope.Scope) value.Value {
	elems := make([]value.Value, len(n.Elements))
	for i, e := range n.Elements {
		v := ev.Eval(e, scp)
		if value.IsError(v) {
			return v
		}
		elems[i] = v
	}
	return value.NewList(elems)
}

// CallFunction implements value.Runtime so intrinsics like map/filter/
// reduce can invoke Kyaro closures and other intrinsics uniformly.
func (ev *Evaluator) CallFunction(fn value.Value, args []value.Value) value.Value {
	switch f := fn.(type) {
	case *function.Function:
		return ev.callUserFunction(f, args)
	case *value.Intrinsic:
		return f.Fn(ev, args)
	default:
		return value.NewRuntimeError("cannot call non-function value of type %s", fn.Type())
	}
}
