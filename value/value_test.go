package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(Bool{Val: false}))
	assert.True(t, Truthy(Bool{Val: true}))
	assert.False(t, Truthy(Int{Val: 0}))
	assert.True(t, Truthy(Int{Val: 1}))
	assert.False(t, Truthy(Float{Val: 0}))
	assert.False(t, Truthy(Str{Val: ""}))
	assert.True(t, Truthy(Str{Val: "x"}))
	assert.True(t, Truthy(NewList(nil)))
}

func TestList_StringQuotesStringElementsOnly(t *testing.T) {
	lst := NewList([]Value{Int{Val: 1}, Str{Val: "a"}, Bool{Val: true}})
	assert.Equal(t, `[1, "a", true]`, lst.String())
}

func TestList_SharesBackingSliceAcrossHandles(t *testing.T) {
	elems := []Value{Int{Val: 1}}
	lst := &List{Elements: &elems}
	alias := lst
	*alias.Elements = append(*alias.Elements, Int{Val: 2})
	assert.Equal(t, "[1, 2]", lst.String())
}

func TestError_StringWithAndWithoutPosition(t *testing.T) {
	withPos := NewRuntimeErrorAt(3, 7, "boom")
	assert.Equal(t, "Error at line 3, column 7: boom", withPos.String())

	noPos := NewRuntimeError("boom")
	assert.Equal(t, "Error: boom", noPos.String())
}

func TestIsErrorIsSignal(t *testing.T) {
	assert.True(t, IsError(NewRuntimeError("x")))
	assert.False(t, IsError(Int{Val: 1}))

	assert.True(t, IsSignal(&ReturnSignal{Val: NullValue}))
	assert.True(t, IsSignal(Break))
	assert.True(t, IsSignal(Continue))
	assert.False(t, IsSignal(Int{Val: 1}))
}
