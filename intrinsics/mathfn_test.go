package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestAbsSqrt(t *testing.T) {
	assert.Equal(t, value.Float{Val: 4}, call(t, "abs", value.Int{Val: -4}))
	assert.Equal(t, value.Float{Val: 3}, call(t, "sqrt", value.Int{Val: 9}))
}

func TestPow(t *testing.T) {
	assert.Equal(t, value.Float{Val: 8}, call(t, "pow", value.Int{Val: 2}, value.Int{Val: 3}))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, value.Float{Val: 1}, call(t, "min", value.Int{Val: 3}, value.Int{Val: 1}, value.Int{Val: 2}))
	assert.Equal(t, value.Float{Val: 3}, call(t, "max", value.Int{Val: 3}, value.Int{Val: 1}, value.Int{Val: 2}))
}

func TestMinMax_FlattensListArgs(t *testing.T) {
	result := call(t, "max", listOf(ints(1, 5, 2)...))
	assert.Equal(t, value.Float{Val: 5}, result)
}

func TestSum_AllIntStaysInt(t *testing.T) {
	result := call(t, "sum", listOf(ints(1, 2, 3)...))
	assert.Equal(t, value.Int{Val: 6}, result)
}

func TestSum_WithFloatPromotes(t *testing.T) {
	result := call(t, "sum", listOf(value.Int{Val: 1}, value.Float{Val: 2.5}))
	assert.Equal(t, value.Float{Val: 3.5}, result)
}

func TestGcdLcm(t *testing.T) {
	assert.Equal(t, value.Int{Val: 6}, call(t, "gcd", value.Int{Val: 12}, value.Int{Val: 18}))
	assert.Equal(t, value.Int{Val: 36}, call(t, "lcm", value.Int{Val: 12}, value.Int{Val: 18}))
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, value.Int{Val: 120}, call(t, "factorial", value.Int{Val: 5}))
}

func TestFactorial_NegativeIsRuntimeError(t *testing.T) {
	result := call(t, "factorial", value.Int{Val: -1})
	assert.True(t, value.IsError(result))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, value.Float{Val: 5}, call(t, "clamp", value.Int{Val: 10}, value.Int{Val: 0}, value.Int{Val: 5}))
	assert.Equal(t, value.Float{Val: 5}, call(t, "lerp", value.Int{Val: 0}, value.Int{Val: 10}, value.Float{Val: 0.5}))
}

func TestConstants(t *testing.T) {
	pi := call(t, "pi")
	f, ok := pi.(value.Float)
	assert.True(t, ok)
	assert.InDelta(t, 3.14159, f.Val, 0.001)
}
