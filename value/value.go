// Package value defines Kyaro's tagged runtime value model: the eight
// value kinds a Kyaro program can construct (Null, Bool, Int, Float, Str,
// List, Func, Intrinsic) plus the internal signal types the evaluator uses
// to propagate errors and escape control flow without leaking Go panics.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type tags every runtime value and every internal evaluator signal.
type Type string

const (
	NullType      Type = "null"
	BoolType      Type = "bool"
	IntType       Type = "int"
	FloatType     Type = "float"
	StrType       Type = "str"
	ListType      Type = "list"
	FuncType      Type = "func"
	IntrinsicType Type = "intrinsic"
	HandleType    Type = "handle"

	// Internal escape/error signals: never constructible from Kyaro syntax,
	// only ever produced and consumed by the evaluator itself.
	ErrorType    Type = "error"
	ReturnType   Type = "return"
	BreakType    Type = "break"
	ContinueType Type = "continue"
)

// Value is any runtime value or internal signal the evaluator works with.
type Value interface {
	Type() Type
	String() string
}

// Null is Kyaro's single absent-value constant.
type Null struct{}

func (Null) Type() Type      { return NullType }
func (Null) String() string  { return "null" }

var NullValue = Null{}

// Bool wraps a boolean.
type Bool struct{ Val bool }

func (b Bool) Type() Type { return BoolType }
func (b Bool) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Int wraps a 64-bit signed integer.
type Int struct{ Val int64 }

func (i Int) Type() Type     { return IntType }
func (i Int) String() string { return strconv.FormatInt(i.Val, 10) }

// Float wraps a 64-bit float.
type Float struct{ Val float64 }

func (f Float) Type() Type { return FloatType }
func (f Float) String() string {
	return strconv.FormatFloat(f.Val, 'f', -1, 64)
}

// Str wraps a UTF-8 string.
type Str struct{ Val string }

func (s Str) Type() Type     { return StrType }
func (s Str) String() string { return s.Val }

// List is a reference type: every copy of a List handle shares the same
// backing slice pointer, so intrinsics that mutate it are visible through
// every other reference, matching spec's shared-mutable-list model.
type List struct{ Elements *[]Value }

func NewList(elems []Value) *List {
	return &List{Elements: &elems}
}

func (l *List) Type() Type { return ListType }
func (l *List) String() string {
	parts := make([]string, len(*l.Elements))
	for i, e := range *l.Elements {
		if s, ok := e.(Str); ok {
			parts[i] = strconv.Quote(s.Val)
			continue
		}
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Handle is a host-opaque value (e.g. an open file) that only the
// intrinsic that created it knows how to interpret further. It is never
// constructible from Kyaro syntax, only returned and consumed by
// intrinsics.
type Handle struct {
	Kind string
	Data interface{}
}

func (h *Handle) Type() Type     { return HandleType }
func (h *Handle) String() string { return fmt.Sprintf("<%s>", h.Kind) }

// Truthy implements spec's coercion-to-boolean rule.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Null:
		return false
	case Bool:
		return t.Val
	case Int:
		return t.Val != 0
	case Float:
		return t.Val != 0
	case Str:
		return t.Val != ""
	default:
		return true
	}
}

// Display renders a value the way the `print` intrinsic does: no quotes
// around top-level strings, recursive bracket notation for lists.
func Display(v Value) string {
	return v.String()
}
