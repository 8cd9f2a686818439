package intrinsics

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kyarolang/kyaro/value"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

func init() {
	register("http_get", builtinHTTPGet)
	register("http_post", builtinHTTPPost)
}

func builtinHTTPGet(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("http_get", 1, len(args))
	}
	url, ok := args[0].(value.Str)
	if !ok {
		return typeError("http_get", "str url", args[0])
	}
	resp, err := httpClient.Get(url.Val)
	if err != nil {
		return value.NewRuntimeError("http_get: %s", err.Error())
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return value.NewRuntimeError("http_get: %s", err.Error())
	}
	return value.Str{Val: string(body)}
}

func builtinHTTPPost(rt value.Runtime, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("http_post", 2, len(args))
	}
	url, ok1 := args[0].(value.Str)
	body, ok2 := args[1].(value.Str)
	if !ok1 || !ok2 {
		return value.NewRuntimeError("http_post expects (url, body) strings")
	}
	resp, err := httpClient.Post(url.Val, "application/json", strings.NewReader(body.Val))
	if err != nil {
		return value.NewRuntimeError("http_post: %s", err.Error())
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return value.NewRuntimeError("http_post: %s", err.Error())
	}
	return value.Str{Val: string(respBody)}
}
