package intrinsics

import (
	"sort"
	"strings"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("sort", builtinSort)
	register("sorted", builtinSort)
	register("reverse", builtinReverse)
	register("contains", builtinContains)
	register("index_of", builtinIndexOf)
	register("index", builtinIndexOf)
	register("slice", builtinSlice)
	register("join", builtinJoin)
	register("map", builtinMap)
	register("filter", builtinFilter)
	register("reduce", builtinReduce)
	register("unique", builtinUnique)
	register("all", builtinAll)
	register("any", builtinAny)
	register("count", builtinCount)
	register("insert", builtinInsert)
	register("remove", builtinRemove)
	register("clear", builtinClear)
	register("copy", builtinCopy)
	register("extend", builtinExtend)
	register("zip", builtinZip)
	register("enumerate", builtinEnumerate)
	register("flatten", builtinFlatten)
}

func cloneElements(lst *value.List) []value.Value {
	src := *lst.Elements
	out := make([]value.Value, len(src))
	copy(out, src)
	return out
}

func builtinSort(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("sort", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("sort", "list", args[0])
	}
	elems := cloneElements(lst)
	var sortErr *value.Error
	sort.SliceStable(elems, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		a, aok := asFloat(elems[i])
		b, bok := asFloat(elems[j])
		if aok && bok {
			return a < b
		}
		as, asok := elems[i].(value.Str)
		bs, bsok := elems[j].(value.Str)
		if asok && bsok {
			return as.Val < bs.Val
		}
		sortErr = value.NewRuntimeError("sort requires a homogeneous list of numbers or strings")
		return false
	})
	if sortErr != nil {
		return sortErr
	}
	return value.NewList(elems)
}

func builtinReverse(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("reverse", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("reverse", "list", args[0])
	}
	elems := cloneElements(lst)
	for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
		elems[i], elems[j] = elems[j], elems[i]
	}
	return value.NewList(elems)
}

func valuesEqual(a, b value.Value) bool {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
	}
	if as, ok := a.(value.Str); ok {
		if bs, ok := b.(value.Str); ok {
			return as.Val == bs.Val
		}
	}
	if ab, ok := a.(value.Bool); ok {
		if bb, ok := b.(value.Bool); ok {
			return ab.Val == bb.Val
		}
	}
	if _, ok := a.(value.Null); ok {
		_, ok2 := b.(value.Null)
		return ok2
	}
	return false
}

// builtinContains works over both a list (element membership) and a
// string (substring search) as the free function contains(x, y); spec's
// string-method syntax ("s".upper()) is a separate, narrower surface that
// does not include contains.
func builtinContains(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("contains", 2, len(args))
	}
	if s, ok := args[0].(value.Str); ok {
		sub, ok := args[1].(value.Str)
		if !ok {
			return typeError("contains", "str", args[1])
		}
		return value.Bool{Val: strings.Contains(s.Val, sub.Val)}
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("contains", "list or str", args[0])
	}
	for _, e := range *lst.Elements {
		if valuesEqual(e, args[1]) {
			return value.Bool{Val: true}
		}
	}
	return value.Bool{Val: false}
}

// builtinIndexOf likewise works over a list (element index) or a string
// (substring byte index), mirroring builtinContains's dual receiver.
func builtinIndexOf(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("index_of", 2, len(args))
	}
	if s, ok := args[0].(value.Str); ok {
		sub, ok := args[1].(value.Str)
		if !ok {
			return typeError("index_of", "str", args[1])
		}
		return value.Int{Val: int64(strings.Index(s.Val, sub.Val))}
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("index_of", "list or str", args[0])
	}
	for i, e := range *lst.Elements {
		if valuesEqual(e, args[1]) {
			return value.Int{Val: int64(i)}
		}
	}
	return value.Int{Val: -1}
}

func builtinSlice(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("slice", 3, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("slice", "list", args[0])
	}
	start, ok1 := args[1].(value.Int)
	end, ok2 := args[2].(value.Int)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("slice expects int start/end")
	}
	elems := *lst.Elements
	lo, hi := start.Val, end.Val
	if lo < 0 || hi < lo || hi > int64(len(elems)) {
		return value.NewRuntimeError("slice index out of range")
	}
	out := make([]value.Value, hi-lo)
	copy(out, elems[lo:hi])
	return value.NewList(out)
}

func builtinJoin(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("join", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("join", "list", args[0])
	}
	sep, ok := args[1].(value.Str)
	if !ok {
		return typeError("join", "str separator", args[1])
	}
	out := ""
	for i, e := range *lst.Elements {
		if i > 0 {
			out += sep.Val
		}
		out += value.Display(e)
	}
	return value.Str{Val: out}
}

func builtinMap(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("map", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("map", "list", args[0])
	}
	src := *lst.Elements
	out := make([]value.Value, len(src))
	for i, e := range src {
		result := rt.CallFunction(args[1], []value.Value{e})
		if value.IsError(result) {
			return result
		}
		out[i] = result
	}
	return value.NewList(out)
}

func builtinFilter(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("filter", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("filter", "list", args[0])
	}
	var out []value.Value
	for _, e := range *lst.Elements {
		result := rt.CallFunction(args[1], []value.Value{e})
		if value.IsError(result) {
			return result
		}
		if value.Truthy(result) {
			out = append(out, e)
		}
	}
	return value.NewList(out)
}

func builtinReduce(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("reduce", 3, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("reduce", "list", args[0])
	}
	acc := args[2]
	for _, e := range *lst.Elements {
		result := rt.CallFunction(args[1], []value.Value{acc, e})
		if value.IsError(result) {
			return result
		}
		acc = result
	}
	return acc
}

func builtinUnique(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("unique", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("unique", "list", args[0])
	}
	var out []value.Value
	for _, e := range *lst.Elements {
		found := false
		for _, seen := range out {
			if valuesEqual(e, seen) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, e)
		}
	}
	return value.NewList(out)
}

func builtinAll(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("all", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("all", "list", args[0])
	}
	for _, e := range *lst.Elements {
		result := rt.CallFunction(args[1], []value.Value{e})
		if value.IsError(result) {
			return result
		}
		if !value.Truthy(result) {
			return value.Bool{Val: false}
		}
	}
	return value.Bool{Val: true}
}

func builtinAny(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("any", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("any", "list", args[0])
	}
	for _, e := range *lst.Elements {
		result := rt.CallFunction(args[1], []value.Value{e})
		if value.IsError(result) {
			return result
		}
		if value.Truthy(result) {
			return value.Bool{Val: true}
		}
	}
	return value.Bool{Val: false}
}

func builtinCount(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("count", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("count", "list", args[0])
	}
	n := int64(0)
	for _, e := range *lst.Elements {
		if valuesEqual(e, args[1]) {
			n++
		}
	}
	return value.Int{Val: n}
}

func builtinInsert(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("insert", 3, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("insert", "list", args[0])
	}
	idx, ok := args[1].(value.Int)
	if !ok {
		return typeError("insert", "int index", args[1])
	}
	elems := *lst.Elements
	if idx.Val < 0 || idx.Val > int64(len(elems)) {
		return value.NewRuntimeError("insert index %d out of range (length %d)", idx.Val, len(elems))
	}
	out := make([]value.Value, 0, len(elems)+1)
	out = append(out, elems[:idx.Val]...)
	out = append(out, args[2])
	out = append(out, elems[idx.Val:]...)
	*lst.Elements = out
	return lst
}

func builtinRemove(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("remove", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("remove", "list", args[0])
	}
	elems := *lst.Elements
	for i, e := range elems {
		if valuesEqual(e, args[1]) {
			*lst.Elements = append(elems[:i], elems[i+1:]...)
			return lst
		}
	}
	return value.NewRuntimeError("remove: value not found in list")
}

func builtinClear(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("clear", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("clear", "list", args[0])
	}
	*lst.Elements = (*lst.Elements)[:0]
	return lst
}

func builtinCopy(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("copy", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("copy", "list", args[0])
	}
	return value.NewList(cloneElements(lst))
}

func builtinExtend(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("extend", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("extend", "list", args[0])
	}
	other, ok := args[1].(*value.List)
	if !ok {
		return typeError("extend", "list", args[1])
	}
	*lst.Elements = append(*lst.Elements, *other.Elements...)
	return lst
}

func builtinZip(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("zip", 2, len(args))
	}
	a, ok1 := args[0].(*value.List)
	b, ok2 := args[1].(*value.List)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("zip expects two lists")
	}
	ae, be := *a.Elements, *b.Elements
	n := len(ae)
	if len(be) < n {
		n = len(be)
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		out[i] = value.NewList([]value.Value{ae[i], be[i]})
	}
	return value.NewList(out)
}

func builtinEnumerate(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("enumerate", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("enumerate", "list", args[0])
	}
	elems := *lst.Elements
	out := make([]value.Value, len(elems))
	for i, e := range elems {
		out[i] = value.NewList([]value.Value{value.Int{Val: int64(i)}, e})
	}
	return value.NewList(out)
}

// builtinFlatten flattens exactly one level of nested lists, matching
// the "flatten" names lists commonly give this operation (a full deep
// flatten would make a list-of-lists indistinguishable from its own
// flattened elements, which spec's List type offers no way to mark).
func builtinFlatten(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("flatten", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("flatten", "list", args[0])
	}
	var out []value.Value
	for _, e := range *lst.Elements {
		if inner, ok := e.(*value.List); ok {
			out = append(out, *inner.Elements...)
		} else {
			out = append(out, e)
		}
	}
	return value.NewList(out)
}
