package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestRegexMatch(t *testing.T) {
	assert.Equal(t, value.Bool{Val: true}, call(t, "regex_match", value.Str{Val: `\d+`}, value.Str{Val: "abc123"}))
	assert.Equal(t, value.Bool{Val: false}, call(t, "regex_match", value.Str{Val: `^\d+$`}, value.Str{Val: "abc123"}))
}

func TestRegexFindAll(t *testing.T) {
	result := call(t, "regex_find_all", value.Str{Val: `\d+`}, value.Str{Val: "a1 b22 c333"})
	assert.Equal(t, `["1", "22", "333"]`, result.String())
}

func TestRegexReplace(t *testing.T) {
	result := call(t, "regex_replace", value.Str{Val: `\s+`}, value.Str{Val: "a   b  c"}, value.Str{Val: " "})
	assert.Equal(t, value.Str{Val: "a b c"}, result)
}

func TestRegexMatch_InvalidPatternIsRuntimeError(t *testing.T) {
	result := call(t, "regex_match", value.Str{Val: `(`}, value.Str{Val: "x"})
	assert.True(t, value.IsError(result))
}
