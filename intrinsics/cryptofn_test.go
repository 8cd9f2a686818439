package intrinsics

import (
	"testing"

	"github.com/kyarolang/kyaro/value"
	"github.com/stretchr/testify/assert"
)

func TestMD5SHA256(t *testing.T) {
	assert.Equal(t, value.Str{Val: "900150983cd24fb0d6963f7d28e17f72"}, call(t, "md5", value.Str{Val: "abc"}))
	assert.Equal(t,
		value.Str{Val: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		call(t, "sha256", value.Str{Val: "abc"}))
}

func TestBase64RoundTrip(t *testing.T) {
	encoded := call(t, "base64_encode", value.Str{Val: "hello"})
	assert.Equal(t, value.Str{Val: "aGVsbG8="}, encoded)
	decoded := call(t, "base64_decode", encoded)
	assert.Equal(t, value.Str{Val: "hello"}, decoded)
}

func TestBase64Decode_InvalidIsRuntimeError(t *testing.T) {
	result := call(t, "base64_decode", value.Str{Val: "not base64!!"})
	assert.True(t, value.IsError(result))
}
