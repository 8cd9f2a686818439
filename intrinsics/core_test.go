package intrinsics

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func withOutput(t *testing.T, fn func(buf *bytes.Buffer)) {
	t.Helper()
	old := Output
	var buf bytes.Buffer
	Output = &buf
	defer func() { Output = old }()
	fn(&buf)
}

func TestPrint_SpaceJoinedWithNewline(t *testing.T) {
	withOutput(t, func(buf *bytes.Buffer) {
		call(t, "print", value.Str{Val: "a"}, value.Int{Val: 1})
		assert.Equal(t, "a 1\n", buf.String())
	})
}

func TestInput_ReadsLineAndEchoesPrompt(t *testing.T) {
	oldInput := Input
	Input = bufio.NewReader(strings.NewReader("typed\n"))
	defer func() { Input = oldInput }()

	withOutput(t, func(buf *bytes.Buffer) {
		result := call(t, "input", value.Str{Val: "prompt> "})
		assert.Equal(t, value.Str{Val: "typed"}, result)
		assert.Equal(t, "prompt> ", buf.String())
	})
}

func TestLen(t *testing.T) {
	assert.Equal(t, value.Int{Val: 3}, call(t, "len", value.Str{Val: "abc"}))
	assert.Equal(t, value.Int{Val: 2}, call(t, "len", listOf(ints(1, 2)...)))
}

func TestStrIntFloatType(t *testing.T) {
	assert.Equal(t, value.Str{Val: "5"}, call(t, "str", value.Int{Val: 5}))
	assert.Equal(t, value.Int{Val: 5}, call(t, "int", value.Str{Val: "5"}))
	assert.Equal(t, value.Float{Val: 5.5}, call(t, "float", value.Str{Val: "5.5"}))
	assert.Equal(t, value.Str{Val: "int"}, call(t, "type", value.Int{Val: 5}))
}

func TestInt_InvalidStringIsRuntimeError(t *testing.T) {
	result := call(t, "int", value.Str{Val: "nope"})
	assert.True(t, value.IsError(result))
}

func TestRange_OneTwoThreeArgForms(t *testing.T) {
	assert.Equal(t, "[0, 1, 2]", call(t, "range", value.Int{Val: 3}).String())
	assert.Equal(t, "[2, 3, 4]", call(t, "range", value.Int{Val: 2}, value.Int{Val: 5}).String())
	assert.Equal(t, "[0, 2, 4]", call(t, "range", value.Int{Val: 0}, value.Int{Val: 5}, value.Int{Val: 2}).String())
}

func TestRange_ZeroStepIsRuntimeError(t *testing.T) {
	result := call(t, "range", value.Int{Val: 0}, value.Int{Val: 5}, value.Int{Val: 0})
	assert.True(t, value.IsError(result))
}

func TestAppendPushPop(t *testing.T) {
	lst := listOf(ints(1, 2)...)
	call(t, "append", lst, value.Int{Val: 3})
	assert.Equal(t, "[1, 2, 3]", lst.String())
	call(t, "push", lst, value.Int{Val: 4})
	assert.Equal(t, "[1, 2, 3, 4]", lst.String())
	popped := call(t, "pop", lst)
	assert.Equal(t, value.Int{Val: 4}, popped)
	assert.Equal(t, "[1, 2, 3]", lst.String())
}

func TestPop_EmptyListIsRuntimeError(t *testing.T) {
	result := call(t, "pop", listOf())
	assert.True(t, value.IsError(result))
}

func TestTime_ReturnsFloat(t *testing.T) {
	_, ok := call(t, "time").(value.Float)
	assert.True(t, ok)
}

func TestSleep_BlocksForApproximatelyTheGivenDuration(t *testing.T) {
	start := time.Now()
	call(t, "sleep", value.Float{Val: 0.01})
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
