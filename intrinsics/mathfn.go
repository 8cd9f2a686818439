package intrinsics

import (
	"math"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("abs", unaryMath("abs", math.Abs))
	register("sqrt", unaryMath("sqrt", math.Sqrt))
	register("floor", unaryMath("floor", math.Floor))
	register("ceil", unaryMath("ceil", math.Ceil))
	register("round", unaryMath("round", math.Round))
	register("trunc", unaryMath("trunc", math.Trunc))
	register("sin", unaryMath("sin", math.Sin))
	register("cos", unaryMath("cos", math.Cos))
	register("tan", unaryMath("tan", math.Tan))
	register("asin", unaryMath("asin", math.Asin))
	register("acos", unaryMath("acos", math.Acos))
	register("atan", unaryMath("atan", math.Atan))
	register("log", unaryMath("log", math.Log))
	register("log10", unaryMath("log10", math.Log10))
	register("log2", unaryMath("log2", math.Log2))
	register("exp", unaryMath("exp", math.Exp))
	register("degrees", unaryMath("degrees", func(x float64) float64 { return x * 180 / math.Pi }))
	register("radians", unaryMath("radians", func(x float64) float64 { return x * math.Pi / 180 }))

	register("pow", builtinPow)
	register("atan2", binaryMath("atan2", math.Atan2))
	register("hypot", binaryMath("hypot", math.Hypot))
	register("min", builtinMin)
	register("max", builtinMax)
	register("sum", builtinSum)
	register("gcd", builtinGcd)
	register("lcm", builtinLcm)
	register("factorial", builtinFactorial)
	register("isnan", builtinIsNan)
	register("isinf", builtinIsInf)
	register("clamp", builtinClamp)
	register("lerp", builtinLerp)
	register("sigmoid", unaryMath("sigmoid", func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }))
	register("relu", unaryMath("relu", func(x float64) float64 { return math.Max(0, x) }))

	register("pi", constant(math.Pi))
	register("e", constant(math.E))
	register("tau", constant(2*math.Pi))
	register("inf", constant(math.Inf(1)))
	register("nan", constant(math.NaN()))
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.Int:
		return float64(n.Val), true
	case value.Float:
		return n.Val, true
	default:
		return 0, false
	}
}

func unaryMath(name string, fn func(float64) float64) value.IntrinsicFunc {
	return func(rt value.Runtime, args []value.Value) value.Value {
		if len(args) != 1 {
			return arityError(name, 1, len(args))
		}
		x, ok := asFloat(args[0])
		if !ok {
			return typeError(name, "numeric", args[0])
		}
		return value.Float{Val: fn(x)}
	}
}

func binaryMath(name string, fn func(float64, float64) float64) value.IntrinsicFunc {
	return func(rt value.Runtime, args []value.Value) value.Value {
		if len(args) != 2 {
			return arityError(name, 2, len(args))
		}
		x, ok1 := asFloat(args[0])
		y, ok2 := asFloat(args[1])
		if !ok1 || !ok2 {
			return value.NewRuntimeError("%s expects numeric arguments", name)
		}
		return value.Float{Val: fn(x, y)}
	}
}

// constant returns a zero-arg intrinsic yielding a fixed float — Kyaro has
// no separate "constant" value kind, so pi/e/tau/inf/nan are just callables
// returning their value, consistent with every other intrinsic.
func constant(v float64) value.IntrinsicFunc {
	return func(rt value.Runtime, args []value.Value) value.Value {
		return value.Float{Val: v}
	}
}

func builtinPow(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("pow", 2, len(args))
	}
	x, ok1 := asFloat(args[0])
	y, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return value.NewRuntimeError("pow expects numeric arguments")
	}
	return value.Float{Val: math.Pow(x, y)}
}

func builtinMin(rt value.Runtime, args []value.Value) value.Value {
	return extremum("min", args, func(a, b float64) bool { return a < b })
}

func builtinMax(rt value.Runtime, args []value.Value) value.Value {
	return extremum("max", args, func(a, b float64) bool { return a > b })
}

func extremum(name string, args []value.Value, better func(a, b float64) bool) value.Value {
	vals := flattenNumericArgs(args)
	if len(vals) == 0 {
		return value.NewRuntimeError("%s expects at least one numeric argument", name)
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if better(v, best) {
			best = v
		}
	}
	return value.Float{Val: best}
}

func flattenNumericArgs(args []value.Value) []float64 {
	var out []float64
	for _, a := range args {
		if lst, ok := a.(*value.List); ok {
			for _, e := range *lst.Elements {
				if f, ok := asFloat(e); ok {
					out = append(out, f)
				}
			}
			continue
		}
		if f, ok := asFloat(a); ok {
			out = append(out, f)
		}
	}
	return out
}

func builtinSum(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("sum", 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return typeError("sum", "list", args[0])
	}
	total := 0.0
	allInt := true
	for _, e := range *lst.Elements {
		f, ok := asFloat(e)
		if !ok {
			return value.NewRuntimeError("sum expects a list of numbers")
		}
		if _, isInt := e.(value.Int); !isInt {
			allInt = false
		}
		total += f
	}
	if allInt {
		return value.Int{Val: int64(total)}
	}
	return value.Float{Val: total}
}

func builtinGcd(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("gcd", 2, len(args))
	}
	a, ok1 := args[0].(value.Int)
	b, ok2 := args[1].(value.Int)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("gcd expects int arguments")
	}
	x, y := a.Val, b.Val
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	return value.Int{Val: x}
}

func builtinLcm(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("lcm", 2, len(args))
	}
	g := builtinGcd(rt, args)
	gi, ok := g.(value.Int)
	if !ok || gi.Val == 0 {
		return value.Int{Val: 0}
	}
	a := args[0].(value.Int).Val
	b := args[1].(value.Int).Val
	result := a / gi.Val * b
	if result < 0 {
		result = -result
	}
	return value.Int{Val: result}
}

func builtinFactorial(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("factorial", 1, len(args))
	}
	n, ok := args[0].(value.Int)
	if !ok || n.Val < 0 {
		return value.NewRuntimeError("factorial expects a non-negative int")
	}
	result := int64(1)
	for i := int64(2); i <= n.Val; i++ {
		result *= i
	}
	return value.Int{Val: result}
}

func builtinIsNan(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("isnan", 1, len(args))
	}
	x, ok := asFloat(args[0])
	if !ok {
		return typeError("isnan", "numeric", args[0])
	}
	return value.Bool{Val: math.IsNaN(x)}
}

func builtinIsInf(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("isinf", 1, len(args))
	}
	x, ok := asFloat(args[0])
	if !ok {
		return typeError("isinf", "numeric", args[0])
	}
	return value.Bool{Val: math.IsInf(x, 0)}
}

func builtinClamp(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("clamp", 3, len(args))
	}
	x, ok1 := asFloat(args[0])
	lo, ok2 := asFloat(args[1])
	hi, ok3 := asFloat(args[2])
	if !ok1 || !ok2 || !ok3 {
		return value.NewRuntimeError("clamp expects numeric arguments")
	}
	return value.Float{Val: math.Max(lo, math.Min(hi, x))}
}

func builtinLerp(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("lerp", 3, len(args))
	}
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	t, ok3 := asFloat(args[2])
	if !ok1 || !ok2 || !ok3 {
		return value.NewRuntimeError("lerp expects numeric arguments")
	}
	return value.Float{Val: a + (b-a)*t}
}
