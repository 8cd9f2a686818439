package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestSort_NumbersAscending(t *testing.T) {
	result := call(t, "sort", listOf(ints(3, 1, 2)...))
	assert.Equal(t, "[1, 2, 3]", result.String())
}

func TestSort_MixedKindIsRuntimeError(t *testing.T) {
	result := call(t, "sort", listOf(value.Int{Val: 1}, value.Str{Val: "a"}))
	assert.True(t, value.IsError(result))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	lst := listOf(ints(3, 1, 2)...)
	call(t, "sort", lst)
	assert.Equal(t, "[3, 1, 2]", lst.String())
}

func TestReverse(t *testing.T) {
	result := call(t, "reverse", listOf(ints(1, 2, 3)...))
	assert.Equal(t, "[3, 2, 1]", result.String())
}

func TestContains(t *testing.T) {
	lst := listOf(value.Int{Val: 1}, value.Str{Val: "x"})
	assert.Equal(t, value.Bool{Val: true}, call(t, "contains", lst, value.Str{Val: "x"}))
	assert.Equal(t, value.Bool{Val: false}, call(t, "contains", lst, value.Str{Val: "y"}))
}

func TestIndexOf(t *testing.T) {
	lst := listOf(ints(10, 20, 30)...)
	assert.Equal(t, value.Int{Val: 1}, call(t, "index_of", lst, value.Int{Val: 20}))
	assert.Equal(t, value.Int{Val: -1}, call(t, "index_of", lst, value.Int{Val: 99}))
}

func TestSlice(t *testing.T) {
	lst := listOf(ints(1, 2, 3, 4, 5)...)
	result := call(t, "slice", lst, value.Int{Val: 1}, value.Int{Val: 4})
	assert.Equal(t, "[2, 3, 4]", result.String())
}

func TestSlice_OutOfRangeIsRuntimeError(t *testing.T) {
	lst := listOf(ints(1, 2, 3)...)
	result := call(t, "slice", lst, value.Int{Val: 0}, value.Int{Val: 9})
	assert.True(t, value.IsError(result))
}

func TestJoin(t *testing.T) {
	lst := listOf(value.Str{Val: "a"}, value.Str{Val: "b"}, value.Str{Val: "c"})
	result := call(t, "join", lst, value.Str{Val: "-"})
	assert.Equal(t, value.Str{Val: "a-b-c"}, result)
}

func TestMap_SquaresEachElement(t *testing.T) {
	lst := listOf(ints(1, 2, 3)...)
	square := &value.Intrinsic{Name: "square", Fn: func(rt value.Runtime, args []value.Value) value.Value {
		n := args[0].(value.Int)
		return value.Int{Val: n.Val * n.Val}
	}}
	result := call(t, "map", lst, square)
	assert.Equal(t, "[1, 4, 9]", result.String())
}

func TestFilter_KeepsEvens(t *testing.T) {
	lst := listOf(ints(1, 2, 3, 4, 5, 6)...)
	isEven := &value.Intrinsic{Name: "isEven", Fn: func(rt value.Runtime, args []value.Value) value.Value {
		n := args[0].(value.Int)
		return value.Bool{Val: n.Val%2 == 0}
	}}
	result := call(t, "filter", lst, isEven)
	assert.Equal(t, "[2, 4, 6]", result.String())
}

func TestReduce_Sums(t *testing.T) {
	lst := listOf(ints(1, 2, 3, 4)...)
	add := &value.Intrinsic{Name: "add", Fn: func(rt value.Runtime, args []value.Value) value.Value {
		a := args[0].(value.Int)
		b := args[1].(value.Int)
		return value.Int{Val: a.Val + b.Val}
	}}
	result := call(t, "reduce", lst, add, value.Int{Val: 0})
	assert.Equal(t, value.Int{Val: 10}, result)
}

func TestReduce_PropagatesCallbackError(t *testing.T) {
	lst := listOf(ints(1, 2)...)
	boom := &value.Intrinsic{Name: "boom", Fn: func(rt value.Runtime, args []value.Value) value.Value {
		return value.NewRuntimeError("boom")
	}}
	result := call(t, "reduce", lst, boom, value.Int{Val: 0})
	assert.True(t, value.IsError(result))
}

func TestUnique(t *testing.T) {
	lst := listOf(value.Int{Val: 1}, value.Int{Val: 1}, value.Int{Val: 2}, value.Str{Val: "a"}, value.Str{Val: "a"})
	result := call(t, "unique", lst)
	assert.Equal(t, `[1, 2, "a"]`, result.String())
}

func TestContains_WorksOnStringsToo(t *testing.T) {
	assert.Equal(t, value.Bool{Val: true}, call(t, "contains", value.Str{Val: "hello"}, value.Str{Val: "ell"}))
	assert.Equal(t, value.Bool{Val: false}, call(t, "contains", value.Str{Val: "hello"}, value.Str{Val: "zz"}))
}

func TestIndexOf_WorksOnStringsToo(t *testing.T) {
	assert.Equal(t, value.Int{Val: 1}, call(t, "index_of", value.Str{Val: "hello"}, value.Str{Val: "ell"}))
}

func TestAllAny(t *testing.T) {
	lst := listOf(ints(2, 4, 6)...)
	isEven := &value.Intrinsic{Name: "isEven", Fn: func(rt value.Runtime, args []value.Value) value.Value {
		n := args[0].(value.Int)
		return value.Bool{Val: n.Val%2 == 0}
	}}
	assert.Equal(t, value.Bool{Val: true}, call(t, "all", lst, isEven))
	assert.Equal(t, value.Bool{Val: true}, call(t, "any", lst, isEven))

	mixed := listOf(ints(2, 3, 6)...)
	assert.Equal(t, value.Bool{Val: false}, call(t, "all", mixed, isEven))
	assert.Equal(t, value.Bool{Val: true}, call(t, "any", mixed, isEven))
}

func TestCount(t *testing.T) {
	lst := listOf(ints(1, 2, 1, 3, 1)...)
	assert.Equal(t, value.Int{Val: 3}, call(t, "count", lst, value.Int{Val: 1}))
}

func TestInsertRemove(t *testing.T) {
	lst := listOf(ints(1, 2, 3)...)
	call(t, "insert", lst, value.Int{Val: 1}, value.Int{Val: 99})
	assert.Equal(t, "[1, 99, 2, 3]", lst.String())
	call(t, "remove", lst, value.Int{Val: 99})
	assert.Equal(t, "[1, 2, 3]", lst.String())
}

func TestRemove_NotFoundIsRuntimeError(t *testing.T) {
	lst := listOf(ints(1, 2)...)
	result := call(t, "remove", lst, value.Int{Val: 99})
	assert.True(t, value.IsError(result))
}

func TestClearCopy(t *testing.T) {
	lst := listOf(ints(1, 2, 3)...)
	clone := call(t, "copy", lst).(*value.List)
	call(t, "clear", lst)
	assert.Equal(t, "[]", lst.String())
	assert.Equal(t, "[1, 2, 3]", clone.String())
}

func TestExtend(t *testing.T) {
	a := listOf(ints(1, 2)...)
	b := listOf(ints(3, 4)...)
	call(t, "extend", a, b)
	assert.Equal(t, "[1, 2, 3, 4]", a.String())
}

func TestZip(t *testing.T) {
	a := listOf(ints(1, 2, 3)...)
	b := listOf(value.Str{Val: "a"}, value.Str{Val: "b"})
	result := call(t, "zip", a, b)
	assert.Equal(t, `[[1, "a"], [2, "b"]]`, result.String())
}

func TestEnumerate(t *testing.T) {
	lst := listOf(value.Str{Val: "x"}, value.Str{Val: "y"})
	result := call(t, "enumerate", lst)
	assert.Equal(t, `[[0, "x"], [1, "y"]]`, result.String())
}

func TestFlatten_OneLevel(t *testing.T) {
	lst := listOf(listOf(ints(1, 2)...), value.Int{Val: 3}, listOf(ints(4)...))
	result := call(t, "flatten", lst)
	assert.Equal(t, "[1, 2, 3, 4]", result.String())
}
