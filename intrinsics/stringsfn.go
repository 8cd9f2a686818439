package intrinsics

import (
	"strings"

	"github.com/kyarolang/kyaro/value"
)

// init registers the string intrinsics as free functions (upper(s)).
// Only upper, lower and split are also reachable through "s".upper()
// method-call syntax, via eval_calls.go's BoundMember dispatch.
func init() {
	register("upper", builtinUpper)
	register("lower", builtinLower)
	register("trim", builtinTrim)
	register("split", builtinSplit)
	register("replace", builtinReplace)
	register("starts_with", builtinStartsWith)
	register("ends_with", builtinEndsWith)
	register("find", builtinFind)
	register("repeat", builtinRepeat)
	register("to_list", builtinToList)
}

func strArg(name string, args []value.Value, i int) (string, *value.Error) {
	s, ok := args[i].(value.Str)
	if !ok {
		return "", typeError(name, "str", args[i])
	}
	return s.Val, nil
}

func builtinUpper(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("upper", 1, len(args))
	}
	s, err := strArg("upper", args, 0)
	if err != nil {
		return err
	}
	return value.Str{Val: strings.ToUpper(s)}
}

func builtinLower(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("lower", 1, len(args))
	}
	s, err := strArg("lower", args, 0)
	if err != nil {
		return err
	}
	return value.Str{Val: strings.ToLower(s)}
}

func builtinTrim(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("trim", 1, len(args))
	}
	s, err := strArg("trim", args, 0)
	if err != nil {
		return err
	}
	return value.Str{Val: strings.TrimSpace(s)}
}

// builtinSplit's separator is optional, defaulting to a single space
// (the original's `split(sep=' ')`), so the member form "a b".split()`
// works without an explicit argument.
func builtinSplit(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 && len(args) != 2 {
		return value.NewRuntimeError("split expects 1 or 2 args, got %d", len(args))
	}
	s, err := strArg("split", args, 0)
	if err != nil {
		return err
	}
	sep := " "
	if len(args) == 2 {
		sep, err = strArg("split", args, 1)
		if err != nil {
			return err
		}
	}
	parts := strings.Split(s, sep)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.Str{Val: p}
	}
	return value.NewList(elems)
}

func builtinReplace(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("replace", 3, len(args))
	}
	s, err := strArg("replace", args, 0)
	if err != nil {
		return err
	}
	old, err := strArg("replace", args, 1)
	if err != nil {
		return err
	}
	new, err := strArg("replace", args, 2)
	if err != nil {
		return err
	}
	return value.Str{Val: strings.ReplaceAll(s, old, new)}
}

func builtinStartsWith(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("starts_with", 2, len(args))
	}
	s, err := strArg("starts_with", args, 0)
	if err != nil {
		return err
	}
	prefix, err := strArg("starts_with", args, 1)
	if err != nil {
		return err
	}
	return value.Bool{Val: strings.HasPrefix(s, prefix)}
}

func builtinEndsWith(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("ends_with", 2, len(args))
	}
	s, err := strArg("ends_with", args, 0)
	if err != nil {
		return err
	}
	suffix, err := strArg("ends_with", args, 1)
	if err != nil {
		return err
	}
	return value.Bool{Val: strings.HasSuffix(s, suffix)}
}

func builtinFind(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("find", 2, len(args))
	}
	s, err := strArg("find", args, 0)
	if err != nil {
		return err
	}
	sub, err := strArg("find", args, 1)
	if err != nil {
		return err
	}
	return value.Int{Val: int64(strings.Index(s, sub))}
}

func builtinRepeat(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("repeat", 2, len(args))
	}
	s, err := strArg("repeat", args, 0)
	if err != nil {
		return err
	}
	n, ok := args[1].(value.Int)
	if !ok || n.Val < 0 {
		return value.NewRuntimeError("repeat expects a non-negative int count")
	}
	return value.Str{Val: strings.Repeat(s, int(n.Val))}
}

func builtinToList(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("to_list", 1, len(args))
	}
	s, err := strArg("to_list", args, 0)
	if err != nil {
		return err
	}
	runes := []rune(s)
	elems := make([]value.Value, len(runes))
	for i, r := range runes {
		elems[i] = value.Str{Val: string(r)}
	}
	return value.NewList(elems)
}
