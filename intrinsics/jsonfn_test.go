package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestParseJSON_Array(t *testing.T) {
	result := call(t, "parse_json", value.Str{Val: "[1, 2, 3]"})
	assert.Equal(t, "[1, 2, 3]", result.String())
}

func TestParseJSON_ObjectBecomesPairList(t *testing.T) {
	result := call(t, "parse_json", value.Str{Val: `{"a": 1}`})
	lst, ok := result.(*value.List)
	assert.True(t, ok)
	assert.Len(t, *lst.Elements, 1)
	pair, ok := (*lst.Elements)[0].(*value.List)
	assert.True(t, ok)
	assert.Equal(t, value.Str{Val: "a"}, (*pair.Elements)[0])
	assert.Equal(t, value.Int{Val: 1}, (*pair.Elements)[1])
}

func TestParseJSON_InvalidIsRuntimeError(t *testing.T) {
	result := call(t, "parse_json", value.Str{Val: "{not json"})
	assert.True(t, value.IsError(result))
}

func TestStringifyJSON_IntList(t *testing.T) {
	lst := listOf(ints(1, 2, 3)...)
	result := call(t, "stringify_json", lst)
	assert.Equal(t, value.Str{Val: "[1,2,3]"}, result)
}
