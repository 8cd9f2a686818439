package eval

import (
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

// evalIndex supports list and string indexing only; negative or
// out-of-range indices are a RuntimeError rather than a wraparound or a
// silent null, per the indexing open question's resolution.
func (ev *Evaluator) evalIndex(n *parser.Index, scp *scope.Scope) value.Value {
	obj := ev.Eval(n.Object, scp)
	if value.IsError(obj) {
		return obj
	}
	idx := ev.Eval(n.Idx, scp)
	if value.IsError(idx) {
		return idx
	}
	line, col := n.Pos()
	var idxVal int64
	switch i := idx.(type) {
	case value.Int:
		idxVal = i.Val
	case value.Float:
		idxVal = int64(i.Val)
	default:
		return value.NewRuntimeErrorAt(line, col, "index must be an int, got %s", idx.Type())
	}
	switch v := obj.(type) {
	case *value.List:
		elems := *v.Elements
		if idxVal < 0 || idxVal >= int64(len(elems)) {
			return value.NewRuntimeErrorAt(line, col, "list index %d out of range (length %d)", idxVal, len(elems))
		}
		return elems[idxVal]
	case value.Str:
		runes := []rune(v.Val)
		if idxVal < 0 || idxVal >= int64(len(runes)) {
			return value.NewRuntimeErrorAt(line, col, "string index %d out of range (length %d)", idxVal, len(runes))
		}
		return value.Str{Val: string(runes[idxVal])}
	default:
		return value.NewRuntimeErrorAt(line, col, "cannot index %s", obj.Type())
	}
}

// evalMemberAccess only supports strings (spec §4.8): the result is a
// bound callable, not the invocation itself — actual invocation happens
// when a postfix Call wraps this node.
func (ev *Evaluator) evalMemberAccess(n *parser.MemberAccess, scp *scope.Scope) value.Value {
	obj := ev.Eval(n.Object, scp)
	if value.IsError(obj) {
		return obj
	}
	s, ok := obj.(value.Str)
	if !ok {
		line, col := n.Pos()
		return value.NewRuntimeErrorAt(line, col, "cannot access member %q on %s", n.Member, obj.Type())
	}
	return &value.BoundMember{Receiver: s.Val, Member: n.Member}
}
