package eval

import (
	"github.com/kyarolang/kyaro/function"
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

// stringMemberNames is the closed set spec §4.8 allows as a string's
// method-call syntax ("s".upper()); any other bound member is a runtime
// error rather than falling through to the whole intrinsic registry.
var stringMemberNames = map[string]bool{
	"upper": true,
	"lower": true,
	"split": true,
}

// evalCall evaluates the callee to an ordinary value.Value and switches on
// its concrete type — *function.Function, *value.Intrinsic, or
// *value.BoundMember are all handled here, so there is exactly one call
// path instead of one per callee kind.
func (ev *Evaluator) evalCall(n *parser.Call, scp *scope.Scope) value.Value {
	callee := ev.Eval(n.Callee, scp)
	if value.IsError(callee) {
		return callee
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v := ev.Eval(a, scp)
		if value.IsError(v) {
			return v
		}
		args[i] = v
	}

	line, col := n.Pos()
	switch fn := callee.(type) {
	case *function.Function:
		result := ev.callUserFunction(fn, args)
		if err, ok := result.(*value.Error); ok && err.Line == 0 && err.Column == 0 {
			return value.NewRuntimeErrorAt(line, col, "%s", err.Message)
		}
		return result
	case *value.Intrinsic:
		return fn.Fn(ev, args)
	case *value.BoundMember:
		if !stringMemberNames[fn.Member] {
			return value.NewRuntimeErrorAt(line, col, "strings have no method %q", fn.Member)
		}
		boundArgs := append([]value.Value{value.Str{Val: fn.Receiver}}, args...)
		member, ok := ev.Scp.Get(fn.Member)
		if !ok {
			return value.NewRuntimeErrorAt(line, col, "undefined method %q", fn.Member)
		}
		intrinsic, ok := member.(*value.Intrinsic)
		if !ok {
			return value.NewRuntimeErrorAt(line, col, "%q is not callable", fn.Member)
		}
		return intrinsic.Fn(ev, boundArgs)
	default:
		return value.NewRuntimeErrorAt(line, col, "cannot call non-function value of type %s", callee.Type())
	}
}

// callUserFunction binds params in a frame parented on the closure's
// captured defining scope, not the caller's frame, so lexical scoping
// holds regardless of where the call happens to occur in the source.
func (ev *Evaluator) callUserFunction(fn *function.Function, args []value.Value) value.Value {
	if len(args) != len(fn.Params) {
		return value.NewRuntimeError("%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}
	callScope := scope.New(fn.Scp)
	for i, p := range fn.Params {
		callScope.Define(p.Name, args[i])
	}

	ev.FuncDepth++
	defer func() { ev.FuncDepth-- }()

	result := ev.Eval(fn.Body, callScope)
	if value.IsError(result) {
		return result
	}
	if ret, ok := result.(*value.ReturnSignal); ok {
		return ret.Val
	}
	if value.IsSignal(result) {
		return value.NewRuntimeError("break/continue escaped %s", fn.String())
	}
	return value.NullValue
}
