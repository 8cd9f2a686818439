package scope

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestDefineGet(t *testing.T) {
	s := New(nil)
	s.Define("x", value.Int{Val: 1})
	v, ok := s.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Val: 1}, v)
}

func TestGet_WalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{Val: 1})
	child := New(parent)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{Val: 1}, v)
}

func TestGet_MissingNameNotFound(t *testing.T) {
	s := New(nil)
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestDefine_ShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{Val: 1})
	child := New(parent)
	child.Define("x", value.Int{Val: 2})

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, value.Int{Val: 2}, childVal)
	assert.Equal(t, value.Int{Val: 1}, parentVal)
}

func TestSet_MutatesOwningFrameThroughChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{Val: 1})
	child := New(parent)

	ok := child.Set("x", value.Int{Val: 9})
	assert.True(t, ok)

	parentVal, _ := parent.Get("x")
	assert.Equal(t, value.Int{Val: 9}, parentVal)
}

func TestSet_UndefinedNameReturnsFalse(t *testing.T) {
	s := New(nil)
	ok := s.Set("missing", value.Int{Val: 1})
	assert.False(t, ok)
}

func TestExists(t *testing.T) {
	parent := New(nil)
	parent.Define("x", value.Int{Val: 1})
	child := New(parent)
	assert.True(t, child.Exists("x"))
	assert.False(t, child.Exists("y"))
}
