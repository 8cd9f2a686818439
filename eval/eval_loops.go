package eval

import (
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

func (ev *Evaluator) evalWhileStatement(n *parser.WhileStatement, scp *scope.Scope) value.Value {
	ev.LoopDepth++
	defer func() { ev.LoopDepth-- }()
	for {
		cond := ev.Eval(n.Cond, scp)
		if value.IsError(cond) {
			return cond
		}
		if !value.Truthy(cond) {
			return value.NullValue
		}
		result := ev.Eval(n.Body, scope.New(scp))
		if value.IsError(result) {
			return result
		}
		switch result.(type) {
		case value.BreakSignal:
			return value.NullValue
		case value.ContinueSignal:
			continue
		}
		if _, ok := result.(*value.ReturnSignal); ok {
			return result
		}
	}
}

// evalForStatement iterates a List or Str, reusing a single loop-body
// frame across iterations (spec's "one new binding per loop, not per
// iteration" rule) rather than nesting a fresh frame each pass.
func (ev *Evaluator) evalForStatement(n *parser.ForStatement, scp *scope.Scope) value.Value {
	iterable := ev.Eval(n.Iterable, scp)
	if value.IsError(iterable) {
		return iterable
	}
	var items []value.Value
	switch it := iterable.(type) {
	case *value.List:
		items = *it.Elements
	case value.Str:
		for _, r := range it.Val {
			items = append(items, value.Str{Val: string(r)})
		}
	default:
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "cannot iterate over %s", iterable.Type())
	}

	ev.LoopDepth++
	defer func() { ev.LoopDepth-- }()
	loopScope := scope.New(scp)
	for _, item := range items {
		loopScope.Define(n.Var, item)
		result := ev.Eval(n.Body, loopScope)
		if value.IsError(result) {
			return result
		}
		switch result.(type) {
		case value.BreakSignal:
			return value.NullValue
		case value.ContinueSignal:
			continue
		}
		if _, ok := result.(*value.ReturnSignal); ok {
			return result
		}
	}
	return value.NullValue
}
