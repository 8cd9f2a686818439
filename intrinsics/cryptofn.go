package intrinsics

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/kyarolang/kyaro/value"
)

func init() {
	register("md5", builtinMD5)
	register("sha256", builtinSHA256)
	register("base64_encode", builtinBase64Encode)
	register("base64_decode", builtinBase64Decode)
}

func builtinMD5(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("md5", 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return typeError("md5", "str", args[0])
	}
	sum := md5.Sum([]byte(s.Val))
	return value.Str{Val: hex.EncodeToString(sum[:])}
}

func builtinSHA256(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("sha256", 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return typeError("sha256", "str", args[0])
	}
	sum := sha256.Sum256([]byte(s.Val))
	return value.Str{Val: hex.EncodeToString(sum[:])}
}

func builtinBase64Encode(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("base64_encode", 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return typeError("base64_encode", "str", args[0])
	}
	return value.Str{Val: base64.StdEncoding.EncodeToString([]byte(s.Val))}
}

func builtinBase64Decode(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("base64_decode", 1, len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return typeError("base64_decode", "str", args[0])
	}
	decoded, err := base64.StdEncoding.DecodeString(s.Val)
	if err != nil {
		return value.NewRuntimeError("base64_decode: %s", err.Error())
	}
	return value.Str{Val: string(decoded)}
}
