package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestUpperLowerTrim(t *testing.T) {
	assert.Equal(t, value.Str{Val: "HI"}, call(t, "upper", value.Str{Val: "hi"}))
	assert.Equal(t, value.Str{Val: "hi"}, call(t, "lower", value.Str{Val: "HI"}))
	assert.Equal(t, value.Str{Val: "hi"}, call(t, "trim", value.Str{Val: "  hi  "}))
}

func TestSplit(t *testing.T) {
	result := call(t, "split", value.Str{Val: "a,b,c"}, value.Str{Val: ","})
	assert.Equal(t, `["a", "b", "c"]`, result.String())
}

func TestSplit_DefaultsToSpaceSeparatorWhenOmitted(t *testing.T) {
	result := call(t, "split", value.Str{Val: "a b c"})
	assert.Equal(t, `["a", "b", "c"]`, result.String())
}

func TestReplace(t *testing.T) {
	result := call(t, "replace", value.Str{Val: "foo bar foo"}, value.Str{Val: "foo"}, value.Str{Val: "baz"})
	assert.Equal(t, value.Str{Val: "baz bar baz"}, result)
}

func TestStartsEndsWith(t *testing.T) {
	assert.Equal(t, value.Bool{Val: true}, call(t, "starts_with", value.Str{Val: "hello"}, value.Str{Val: "he"}))
	assert.Equal(t, value.Bool{Val: true}, call(t, "ends_with", value.Str{Val: "hello"}, value.Str{Val: "lo"}))
	assert.Equal(t, value.Bool{Val: false}, call(t, "starts_with", value.Str{Val: "hello"}, value.Str{Val: "lo"}))
}

func TestFind(t *testing.T) {
	assert.Equal(t, value.Int{Val: 2}, call(t, "find", value.Str{Val: "hello"}, value.Str{Val: "ll"}))
	assert.Equal(t, value.Int{Val: -1}, call(t, "find", value.Str{Val: "hello"}, value.Str{Val: "zz"}))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, value.Str{Val: "abab"}, call(t, "repeat", value.Str{Val: "ab"}, value.Int{Val: 2}))
}

func TestRepeat_NegativeCountIsRuntimeError(t *testing.T) {
	result := call(t, "repeat", value.Str{Val: "ab"}, value.Int{Val: -1})
	assert.True(t, value.IsError(result))
}

func TestToList(t *testing.T) {
	result := call(t, "to_list", value.Str{Val: "abc"})
	assert.Equal(t, `["a", "b", "c"]`, result.String())
}

func TestWrongArgTypeIsTypeError(t *testing.T) {
	result := call(t, "upper", value.Int{Val: 1})
	assert.True(t, value.IsError(result))
}
