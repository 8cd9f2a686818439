package intrinsics

import (
	"encoding/json"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("parse_json", builtinParseJSON)
	register("stringify_json", builtinStringifyJSON)
}

func builtinParseJSON(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("parse_json", 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return typeError("parse_json", "str", args[0])
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(s.Val), &decoded); err != nil {
		return value.NewRuntimeError("parse_json: %s", err.Error())
	}
	return fromJSON(decoded)
}

// fromJSON converts decoded JSON into Kyaro values. Kyaro has no map
// type, so a JSON object becomes a List of two-element [key, value]
// lists, in no defined order. stringify_json writes such a list back as
// a JSON array of arrays, not as an object.
func fromJSON(v interface{}) value.Value {
	switch x := v.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.Bool{Val: x}
	case float64:
		if x == float64(int64(x)) {
			return value.Int{Val: int64(x)}
		}
		return value.Float{Val: x}
	case string:
		return value.Str{Val: x}
	case []interface{}:
		elems := make([]value.Value, len(x))
		for i, e := range x {
			elems[i] = fromJSON(e)
		}
		return value.NewList(elems)
	case map[string]interface{}:
		pairs := make([]value.Value, 0, len(x))
		for k, val := range x {
			pairs = append(pairs, value.NewList([]value.Value{value.Str{Val: k}, fromJSON(val)}))
		}
		return value.NewList(pairs)
	default:
		return value.NullValue
	}
}

func toJSON(v value.Value) interface{} {
	switch x := v.(type) {
	case value.Null:
		return nil
	case value.Bool:
		return x.Val
	case value.Int:
		return x.Val
	case value.Float:
		return x.Val
	case value.Str:
		return x.Val
	case *value.List:
		out := make([]interface{}, len(*x.Elements))
		for i, e := range *x.Elements {
			out[i] = toJSON(e)
		}
		return out
	default:
		return nil
	}
}

func builtinStringifyJSON(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("stringify_json", 1, len(args))
	}
	encoded, err := json.Marshal(toJSON(args[0]))
	if err != nil {
		return value.NewRuntimeError("stringify_json: %s", err.Error())
	}
	return value.Str{Val: string(encoded)}
}
