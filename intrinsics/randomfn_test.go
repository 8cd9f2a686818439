package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestRandint_BoundsInclusive(t *testing.T) {
	call(t, "seed", value.Int{Val: 1})
	for i := 0; i < 50; i++ {
		result := call(t, "randint", value.Int{Val: 1}, value.Int{Val: 3}).(value.Int)
		assert.GreaterOrEqual(t, result.Val, int64(1))
		assert.LessOrEqual(t, result.Val, int64(3))
	}
}

func TestChoice_ReturnsAnElement(t *testing.T) {
	lst := listOf(ints(7, 8, 9)...)
	result := call(t, "choice", lst)
	assert.Contains(t, []int64{7, 8, 9}, result.(value.Int).Val)
}

func TestChoice_EmptyListIsRuntimeError(t *testing.T) {
	result := call(t, "choice", listOf())
	assert.True(t, value.IsError(result))
}

func TestShuffle_PreservesElementsDoesNotMutateInput(t *testing.T) {
	lst := listOf(ints(1, 2, 3, 4, 5)...)
	result := call(t, "shuffle", lst).(*value.List)
	assert.Equal(t, "[1, 2, 3, 4, 5]", lst.String())
	assert.ElementsMatch(t, *lst.Elements, *result.Elements)
}

func TestUniform_WithinBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		result := call(t, "uniform", value.Float{Val: 1}, value.Float{Val: 2}).(value.Float)
		assert.GreaterOrEqual(t, result.Val, 1.0)
		assert.Less(t, result.Val, 2.0)
	}
}

func TestGauss_ReturnsFloat(t *testing.T) {
	_, ok := call(t, "gauss", value.Float{Val: 0}, value.Float{Val: 1}).(value.Float)
	assert.True(t, ok)
}

func TestSample_DistinctSubsetNoMutation(t *testing.T) {
	lst := listOf(ints(1, 2, 3, 4, 5)...)
	result := call(t, "sample", lst, value.Int{Val: 3}).(*value.List)
	assert.Len(t, *result.Elements, 3)
	assert.Equal(t, "[1, 2, 3, 4, 5]", lst.String())
}

func TestSample_KExceedsLengthIsRuntimeError(t *testing.T) {
	lst := listOf(ints(1, 2)...)
	result := call(t, "sample", lst, value.Int{Val: 5})
	assert.True(t, value.IsError(result))
}
