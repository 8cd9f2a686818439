package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
)

// fakeRuntime lets tests exercise higher-order intrinsics (map/filter/
// reduce) without pulling in the eval package: it only ever calls back
// into other *value.Intrinsic values, never user closures.
type fakeRuntime struct{}

func (fakeRuntime) CallFunction(fn value.Value, args []value.Value) value.Value {
	in, ok := fn.(*value.Intrinsic)
	if !ok {
		return value.NewRuntimeError("fakeRuntime: %s is not callable", fn.Type())
	}
	return in.Fn(fakeRuntime{}, args)
}

// find looks up a registered intrinsic by name, failing the test if it's
// missing so a typo in a test doesn't silently skip coverage.
func find(t *testing.T, name string) *value.Intrinsic {
	t.Helper()
	for _, in := range Registry {
		if in.Name == name {
			return in
		}
	}
	t.Fatalf("intrinsic %q is not registered", name)
	return nil
}

func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	return find(t, name).Fn(fakeRuntime{}, args)
}

func listOf(vals ...value.Value) *value.List {
	return value.NewList(vals)
}

func ints(vs ...int64) []value.Value {
	out := make([]value.Value, len(vs))
	for i, v := range vs {
		out[i] = value.Int{Val: v}
	}
	return out
}
