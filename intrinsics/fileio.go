package intrinsics

import (
	"io"
	"os"

	"github.com/kyarolang/kyaro/value"
)

const fileHandleKind = "file"

func init() {
	register("fopen", builtinFopen)
	register("fclose", builtinFclose)
	register("fread", builtinFread)
	register("fwrite", builtinFwrite)
	register("fseek", builtinFseek)
	register("ftell", builtinFtell)
	register("file_exists", builtinFileExists)
	register("read_file", builtinReadFile)
	register("write_file", builtinWriteFile)
}

func fileArg(name string, args []value.Value, i int) (*os.File, *value.Error) {
	h, ok := args[i].(*value.Handle)
	if !ok || h.Kind != fileHandleKind {
		return nil, typeError(name, "file handle", args[i])
	}
	f, ok := h.Data.(*os.File)
	if !ok {
		return nil, value.NewRuntimeError("%s: stale file handle", name)
	}
	return f, nil
}

// builtinFopen opens a path with a C-style mode string (spec's handle
// model, per DESIGN.md's grounding on the teacher's file/file.go).
func builtinFopen(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("fopen", 2, len(args))
	}
	path, ok1 := args[0].(value.Str)
	mode, ok2 := args[1].(value.Str)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("fopen expects (path, mode) strings")
	}
	var flag int
	switch mode.Val {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return value.NewRuntimeError("fopen: unsupported mode %q", mode.Val)
	}
	f, err := os.OpenFile(path.Val, flag, 0644)
	if err != nil {
		return value.NewRuntimeError("fopen: %s", err.Error())
	}
	return &value.Handle{Kind: fileHandleKind, Data: f}
}

func builtinFclose(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("fclose", 1, len(args))
	}
	f, errv := fileArg("fclose", args, 0)
	if errv != nil {
		return errv
	}
	if err := f.Close(); err != nil {
		return value.NewRuntimeError("fclose: %s", err.Error())
	}
	return value.NullValue
}

func builtinFread(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("fread", 1, len(args))
	}
	f, errv := fileArg("fread", args, 0)
	if errv != nil {
		return errv
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return value.NewRuntimeError("fread: %s", err.Error())
	}
	return value.Str{Val: string(data)}
}

func builtinFwrite(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("fwrite", 2, len(args))
	}
	f, errv := fileArg("fwrite", args, 0)
	if errv != nil {
		return errv
	}
	s, ok := args[1].(value.Str)
	if !ok {
		return typeError("fwrite", "str", args[1])
	}
	n, err := f.WriteString(s.Val)
	if err != nil {
		return value.NewRuntimeError("fwrite: %s", err.Error())
	}
	return value.Int{Val: int64(n)}
}

func builtinFseek(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("fseek", 2, len(args))
	}
	f, errv := fileArg("fseek", args, 0)
	if errv != nil {
		return errv
	}
	offset, ok := args[1].(value.Int)
	if !ok {
		return typeError("fseek", "int offset", args[1])
	}
	if _, err := f.Seek(offset.Val, io.SeekStart); err != nil {
		return value.NewRuntimeError("fseek: %s", err.Error())
	}
	return value.NullValue
}

func builtinFtell(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("ftell", 1, len(args))
	}
	f, errv := fileArg("ftell", args, 0)
	if errv != nil {
		return errv
	}
	pos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return value.NewRuntimeError("ftell: %s", err.Error())
	}
	return value.Int{Val: pos}
}

func builtinFileExists(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("file_exists", 1, len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return typeError("file_exists", "str", args[0])
	}
	_, err := os.Stat(path.Val)
	return value.Bool{Val: err == nil}
}

// builtinReadFile and builtinWriteFile are the whole-file convenience
// intrinsics supplemented from file_system_functions.py, skipping the
// fopen/fclose ceremony for the common case.
func builtinReadFile(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("read_file", 1, len(args))
	}
	path, ok := args[0].(value.Str)
	if !ok {
		return typeError("read_file", "str", args[0])
	}
	data, err := os.ReadFile(path.Val)
	if err != nil {
		return value.NewRuntimeError("read_file: %s", err.Error())
	}
	return value.Str{Val: string(data)}
}

func builtinWriteFile(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("write_file", 2, len(args))
	}
	path, ok1 := args[0].(value.Str)
	content, ok2 := args[1].(value.Str)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("write_file expects (path, content) strings")
	}
	if err := os.WriteFile(path.Val, []byte(content.Val), 0644); err != nil {
		return value.NewRuntimeError("write_file: %s", err.Error())
	}
	return value.NullValue
}
