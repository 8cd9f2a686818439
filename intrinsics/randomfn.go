package intrinsics

import (
	"math/rand"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("random", builtinRandom)
	register("randint", builtinRandint)
	register("uniform", builtinUniform)
	register("choice", builtinChoice)
	register("sample", builtinSample)
	register("shuffle", builtinShuffle)
	register("seed", builtinSeed)
	register("gauss", builtinGauss)
}

func builtinRandom(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 0 {
		return arityError("random", 0, len(args))
	}
	return value.Float{Val: rand.Float64()}
}

func builtinRandint(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("randint", 2, len(args))
	}
	lo, ok1 := args[0].(value.Int)
	hi, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 || hi.Val < lo.Val {
		return value.NewRuntimeError("randint expects lo <= hi int bounds")
	}
	return value.Int{Val: lo.Val + rand.Int63n(hi.Val-lo.Val+1)}
}

// builtinUniform is randint's float counterpart: a uniformly distributed
// float in [lo, hi).
func builtinUniform(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("uniform", 2, len(args))
	}
	lo, ok1 := asFloat(args[0])
	hi, ok2 := asFloat(args[1])
	if !ok1 || !ok2 || hi < lo {
		return value.NewRuntimeError("uniform expects lo <= hi numeric bounds")
	}
	return value.Float{Val: lo + rand.Float64()*(hi-lo)}
}

func builtinGauss(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("gauss", 2, len(args))
	}
	mean, ok1 := asFloat(args[0])
	stdev, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return value.NewRuntimeError("gauss expects numeric mean and stdev")
	}
	return value.Float{Val: mean + rand.NormFloat64()*stdev}
}

// builtinSample draws k distinct elements from a list without replacement,
// via a partial Fisher-Yates shuffle over a clone of the input.
func builtinSample(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("sample", 2, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("sample", "list", args[0])
	}
	k, ok := args[1].(value.Int)
	if !ok {
		return typeError("sample", "int count", args[1])
	}
	elems := cloneElements(lst)
	if k.Val < 0 || k.Val > int64(len(elems)) {
		return value.NewRuntimeError("sample: k=%d exceeds list length %d", k.Val, len(elems))
	}
	for i := 0; i < int(k.Val); i++ {
		j := i + rand.Intn(len(elems)-i)
		elems[i], elems[j] = elems[j], elems[i]
	}
	return value.NewList(elems[:k.Val])
}

func builtinChoice(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("choice", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("choice", "list", args[0])
	}
	elems := *lst.Elements
	if len(elems) == 0 {
		return value.NewRuntimeError("choice expects a non-empty list")
	}
	return elems[rand.Intn(len(elems))]
}

func builtinShuffle(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("shuffle", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("shuffle", "list", args[0])
	}
	elems := cloneElements(lst)
	rand.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
	return value.NewList(elems)
}

func builtinSeed(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("seed", 1, len(args))
	}
	n, ok := args[0].(value.Int)
	if !ok {
		return typeError("seed", "int", args[0])
	}
	rand.Seed(n.Val)
	return value.NullValue
}
