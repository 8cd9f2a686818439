// Package function holds Kyaro's user-defined function/closure object.
package function

import (
	"fmt"
	"strings"

	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/scope"
	"github.com/kyarolang/kyaro/value"
)

// Function is a closure: the parsed parameter list and body, together with
// the scope that was current when the `func` statement was evaluated,
// captured by reference so later calls still see that environment even if
// it has since gone out of lexical scope in the defining code.
type Function struct {
	Name   string
	Params []*parser.Identifier
	Body   *parser.Block
	Scp    *scope.Scope
}

func (f *Function) Type() value.Type { return value.FuncType }

func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<func %s(%s)>", name, strings.Join(names, ", "))
}
