package intrinsics

import (
	"regexp"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("regex_match", builtinRegexMatch)
	register("regex_find_all", builtinRegexFindAll)
	register("regex_replace", builtinRegexReplace)
}

func compileArg(name string, args []value.Value, i int) (*regexp.Regexp, *value.Error) {
	pat, ok := args[i].(value.Str)
	if !ok {
		return nil, typeError(name, "str pattern", args[i])
	}
	re, err := regexp.Compile(pat.Val)
	if err != nil {
		return nil, value.NewRuntimeError("%s: invalid pattern: %s", name, err.Error())
	}
	return re, nil
}

func builtinRegexMatch(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("regex_match", 2, len(args))
	}
	re, err := compileArg("regex_match", args, 0)
	if err != nil {
		return err
	}
	s, ok := args[1].(value.Str)
	if !ok {
		return typeError("regex_match", "str", args[1])
	}
	return value.Bool{Val: re.MatchString(s.Val)}
}

func builtinRegexFindAll(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("regex_find_all", 2, len(args))
	}
	re, err := compileArg("regex_find_all", args, 0)
	if err != nil {
		return err
	}
	s, ok := args[1].(value.Str)
	if !ok {
		return typeError("regex_find_all", "str", args[1])
	}
	matches := re.FindAllString(s.Val, -1)
	elems := make([]value.Value, len(matches))
	for i, m := range matches {
		elems[i] = value.Str{Val: m}
	}
	return value.NewList(elems)
}

func builtinRegexReplace(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 3 {
		return arityError("regex_replace", 3, len(args))
	}
	re, err := compileArg("regex_replace", args, 0)
	if err != nil {
		return err
	}
	s, ok := args[1].(value.Str)
	if !ok {
		return typeError("regex_replace", "str", args[1])
	}
	repl, ok := args[2].(value.Str)
	if !ok {
		return typeError("regex_replace", "str replacement", args[2])
	}
	return value.Str{Val: re.ReplaceAllString(s.Val, repl.Val)}
}
