package intrinsics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kyarolang/kyaro/value"
)

// Output and Input let the CLI/REPL and tests redirect `print`/`input`
// without threading an io.Writer through every intrinsic call.
var Output io.Writer = os.Stdout
var Input = bufio.NewReader(os.Stdin)

func init() {
	register("print", builtinPrint)
	register("input", builtinInput)
	register("len", builtinLen)
	register("str", builtinStr)
	register("int", builtinInt)
	register("float", builtinFloat)
	register("type", builtinType)
	register("range", builtinRange)
	register("append", builtinAppend)
	register("push", builtinAppend)
	register("pop", builtinPop)
	register("exit", builtinExit)
	register("time", builtinTime)
	register("sleep", builtinSleep)
}

// builtinPrint renders every argument with value.Display, space-separated,
// followed by a newline, matching spec's print-formatting rules exactly
// (no quotes around top-level strings, lists rendered recursively).
func builtinPrint(rt value.Runtime, args []value.Value) value.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Display(a)
	}
	fmt.Fprintln(Output, strings.Join(parts, " "))
	return value.NullValue
}

func builtinInput(rt value.Runtime, args []value.Value) value.Value {
	if len(args) > 1 {
		return arityError("input", 1, len(args))
	}
	if len(args) == 1 {
		if s, ok := args[0].(value.Str); ok {
			fmt.Fprint(Output, s.Val)
		}
	}
	line, _ := Input.ReadString('\n')
	return value.Str{Val: strings.TrimRight(line, "\r\n")}
}

func builtinLen(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case value.Str:
		return value.Int{Val: int64(len(v.Val))}
	case *value.List:
		return value.Int{Val: int64(len(*v.Elements))}
	default:
		return typeError("len", "str or list", args[0])
	}
}

func builtinStr(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("str", 1, len(args))
	}
	return value.Str{Val: value.Display(args[0])}
}

func builtinInt(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("int", 1, len(args))
	}
	switch v := args[0].(type) {
	case value.Int:
		return v
	case value.Float:
		return value.Int{Val: int64(v.Val)}
	case value.Bool:
		if v.Val {
			return value.Int{Val: 1}
		}
		return value.Int{Val: 0}
	case value.Str:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Val), 10, 64)
		if err != nil {
			return value.NewRuntimeError("cannot convert %q to int", v.Val)
		}
		return value.Int{Val: n}
	default:
		return typeError("int", "int, float, bool, or str", args[0])
	}
}

func builtinFloat(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("float", 1, len(args))
	}
	switch v := args[0].(type) {
	case value.Float:
		return v
	case value.Int:
		return value.Float{Val: float64(v.Val)}
	case value.Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return value.NewRuntimeError("cannot convert %q to float", v.Val)
		}
		return value.Float{Val: f}
	default:
		return typeError("float", "int, float, or str", args[0])
	}
}

func builtinType(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("type", 1, len(args))
	}
	return value.Str{Val: string(args[0].Type())}
}

// builtinRange produces a List of consecutive ints, supporting the
// stop / (start, stop) / (start, stop, step) forms.
func builtinRange(rt value.Runtime, args []value.Value) value.Value {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 1:
		n, ok := args[0].(value.Int)
		if !ok {
			return typeError("range", "int", args[0])
		}
		stop = n.Val
	case 2, 3:
		a, ok1 := args[0].(value.Int)
		b, ok2 := args[1].(value.Int)
		if !ok1 || !ok2 {
			return value.NewRuntimeError("range expects int arguments")
		}
		start, stop = a.Val, b.Val
		if len(args) == 3 {
			s, ok := args[2].(value.Int)
			if !ok {
				return typeError("range", "int", args[2])
			}
			step = s.Val
		}
	default:
		return value.NewRuntimeError("range expects 1 to 3 arguments, got %d", len(args))
	}
	if step == 0 {
		return value.NewRuntimeError("range step must not be zero")
	}
	elems := []value.Value{}
	if step > 0 {
		for i := start; i < stop; i += step {
			elems = append(elems, value.Int{Val: i})
		}
	} else {
		for i := start; i > stop; i += step {
			elems = append(elems, value.Int{Val: i})
		}
	}
	return value.NewList(elems)
}

func builtinAppend(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("append", 2, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return typeError("append", "list", args[0])
	}
	*list.Elements = append(*list.Elements, args[1])
	return list
}

func builtinPop(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("pop", 1, len(args))
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return typeError("pop", "list", args[0])
	}
	elems := *list.Elements
	if len(elems) == 0 {
		return value.NewRuntimeError("pop from empty list")
	}
	last := elems[len(elems)-1]
	*list.Elements = elems[:len(elems)-1]
	return last
}

func builtinExit(rt value.Runtime, args []value.Value) value.Value {
	code := 0
	if len(args) == 1 {
		if n, ok := args[0].(value.Int); ok {
			code = int(n.Val)
		}
	}
	os.Exit(code)
	return value.NullValue
}

func builtinTime(rt value.Runtime, args []value.Value) value.Value {
	return value.Float{Val: float64(time.Now().UnixNano()) / 1e9}
}

func builtinSleep(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("sleep", 1, len(args))
	}
	var seconds float64
	switch v := args[0].(type) {
	case value.Int:
		seconds = float64(v.Val)
	case value.Float:
		seconds = v.Val
	default:
		return typeError("sleep", "int or float", args[0])
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return value.NullValue
}
