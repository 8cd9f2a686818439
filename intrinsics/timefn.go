package intrinsics

import (
	"time"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("now", builtinNow)
	register("format_time", builtinFormatTime)
}

// builtinNow returns the current time as a Unix-epoch float, mirroring
// core.go's `time` intrinsic but kept distinct since spec.md names both.
func builtinNow(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 0 {
		return arityError("now", 0, len(args))
	}
	return value.Float{Val: float64(time.Now().UnixNano()) / 1e9}
}

// builtinFormatTime renders a Unix-epoch timestamp using Go's reference
// layout, so Kyaro scripts pass the same layout strings a Go programmer
// already knows ("2006-01-02 15:04:05").
func builtinFormatTime(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("format_time", 2, len(args))
	}
	epoch, ok := asFloat(args[0])
	if !ok {
		return typeError("format_time", "numeric epoch seconds", args[0])
	}
	layout, ok := args[1].(value.Str)
	if !ok {
		return typeError("format_time", "str layout", args[1])
	}
	t := time.Unix(int64(epoch), 0).UTC()
	return value.Str{Val: t.Format(layout.Val)}
}
