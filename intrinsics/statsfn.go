package intrinsics

import (
	"math"
	"sort"

	"github.com/kyarolang/kyaro/value"
)

// statsfn supplements the math surface with the descriptive-statistics
// helpers kyaro_builtins.py exposes (mean/median/mode/stdev/variance),
// which the teacher's own std/math.go never covered.
func init() {
	register("mean", builtinMean)
	register("median", builtinMedian)
	register("mode", builtinMode)
	register("variance", builtinVariance)
	register("stdev", builtinStdev)
}

func listOfFloats(name string, args []value.Value) ([]float64, *value.Error) {
	if len(args) != 1 {
		return nil, arityError(name, 1, len(args))
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, typeError(name, "list", args[0])
	}
	elems := *lst.Elements
	if len(elems) == 0 {
		return nil, value.NewRuntimeError("%s expects a non-empty list", name)
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		f, ok := asFloat(e)
		if !ok {
			return nil, value.NewRuntimeError("%s expects a list of numbers", name)
		}
		out[i] = f
	}
	return out, nil
}

func builtinMean(rt value.Runtime, args []value.Value) value.Value {
	nums, err := listOfFloats("mean", args)
	if err != nil {
		return err
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}
	return value.Float{Val: total / float64(len(nums))}
}

func builtinMedian(rt value.Runtime, args []value.Value) value.Value {
	nums, err := listOfFloats("median", args)
	if err != nil {
		return err
	}
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return value.Float{Val: sorted[n/2]}
	}
	return value.Float{Val: (sorted[n/2-1] + sorted[n/2]) / 2}
}

func builtinMode(rt value.Runtime, args []value.Value) value.Value {
	nums, err := listOfFloats("mode", args)
	if err != nil {
		return err
	}
	counts := map[float64]int{}
	for _, n := range nums {
		counts[n]++
	}
	best, bestCount := nums[0], 0
	for _, n := range nums {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	return value.Float{Val: best}
}

func builtinVariance(rt value.Runtime, args []value.Value) value.Value {
	nums, err := listOfFloats("variance", args)
	if err != nil {
		return err
	}
	return value.Float{Val: variance(nums)}
}

func variance(nums []float64) float64 {
	mean := 0.0
	for _, n := range nums {
		mean += n
	}
	mean /= float64(len(nums))
	sq := 0.0
	for _, n := range nums {
		d := n - mean
		sq += d * d
	}
	return sq / float64(len(nums))
}

func builtinStdev(rt value.Runtime, args []value.Value) value.Value {
	nums, err := listOfFloats("stdev", args)
	if err != nil {
		return err
	}
	return value.Float{Val: math.Sqrt(variance(nums))}
}
