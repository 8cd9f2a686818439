package value

import "fmt"

// Runtime is the capability an intrinsic needs to call back into Kyaro
// user code, e.g. the callback passed to `filter`/`map`/`reduce`.
type Runtime interface {
	CallFunction(fn Value, args []Value) Value
}

// IntrinsicFunc is a host-supplied callable's implementation.
type IntrinsicFunc func(rt Runtime, args []Value) Value

// Intrinsic is a host-provided callable installed in the global frame
// under a fixed name (spec's intrinsic table contract).
type Intrinsic struct {
	Name string
	Fn   IntrinsicFunc
}

func (i *Intrinsic) Type() Type     { return IntrinsicType }
func (i *Intrinsic) String() string { return fmt.Sprintf("<intrinsic %s>", i.Name) }

// BoundMember is what a string's MemberAccess evaluates to: a callable
// already bound to its receiver, so `"abc".upper` alone denotes the
// zero-arg callable and `()` is what actually invokes it.
type BoundMember struct {
	Receiver string
	Member   string
}

func (b *BoundMember) Type() Type     { return IntrinsicType }
func (b *BoundMember) String() string { return fmt.Sprintf("<bound %s>", b.Member) }
