package intrinsics

import (
	"path/filepath"
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestReadWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	result := call(t, "write_file", value.Str{Val: path}, value.Str{Val: "hello kyaro"})
	assert.Equal(t, value.NullValue, result)

	assert.Equal(t, value.Bool{Val: true}, call(t, "file_exists", value.Str{Val: path}))
	content := call(t, "read_file", value.Str{Val: path})
	assert.Equal(t, value.Str{Val: "hello kyaro"}, content)
}

func TestFileExists_MissingPath(t *testing.T) {
	result := call(t, "file_exists", value.Str{Val: "/does/not/exist/at/all"})
	assert.Equal(t, value.Bool{Val: false}, result)
}

func TestFopenFwriteFreadFclose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handle.txt")
	handle := call(t, "fopen", value.Str{Val: path}, value.Str{Val: "w"})
	_, ok := handle.(*value.Handle)
	assert.True(t, ok)

	n := call(t, "fwrite", handle, value.Str{Val: "abc"})
	assert.Equal(t, value.Int{Val: 3}, n)
	assert.Equal(t, value.NullValue, call(t, "fclose", handle))

	readHandle := call(t, "fopen", value.Str{Val: path}, value.Str{Val: "r"})
	contents := call(t, "fread", readHandle)
	assert.Equal(t, value.Str{Val: "abc"}, contents)
	call(t, "fclose", readHandle)
}

func TestFopen_MissingFileInReadModeIsRuntimeError(t *testing.T) {
	result := call(t, "fopen", value.Str{Val: "/does/not/exist/at/all"}, value.Str{Val: "r"})
	assert.True(t, value.IsError(result))
}

func TestFopen_UnsupportedModeIsRuntimeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	result := call(t, "fopen", value.Str{Val: path}, value.Str{Val: "x"})
	assert.True(t, value.IsError(result))
}
