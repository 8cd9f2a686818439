// Package intrinsics is Kyaro's host capability table (spec component F):
// an open-ended, self-registering set of callables the evaluator installs
// into the global frame at startup. Each file here registers one group of
// related names via init(), the same pattern the teacher's std package
// uses for its own Builtins slice.
package intrinsics

import "github.com/kyarolang/kyaro/value"

// Registry accumulates every *value.Intrinsic registered by this
// package's init() functions, in registration order.
var Registry = make([]*value.Intrinsic, 0)

func register(name string, fn value.IntrinsicFunc) {
	Registry = append(Registry, &value.Intrinsic{Name: name, Fn: fn})
}

// arityError formats the standard "wrong number of arguments" runtime
// error shared by every intrinsic.
func arityError(name string, want, got int) *value.Error {
	return value.NewRuntimeError("%s expects %d argument(s), got %d", name, want, got)
}

func typeError(name, expected string, got value.Value) *value.Error {
	return value.NewRuntimeError("%s expects %s, got %s", name, expected, got.Type())
}
