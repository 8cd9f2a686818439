package eval

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestGoldenPrograms snapshot-tests a handful of representative programs'
// stdout, the same go-snaps harness used for fixture-driven testing.
func TestGoldenPrograms(t *testing.T) {
	programs := map[string]string{
		"fibonacci": `
func fib(n) {
  if n <= 1 { return n }
  return fib(n - 1) + fib(n - 2)
}
for i in range(8) { print(fib(i)) }
`,
		"list_pipeline": `
let xs = [1, 2, 3, 4, 5]
func double(x) { return x * 2 }
func isEven(x) { return x % 2 == 0 }
print(filter(map(xs, double), isEven))
`,
		"string_methods": `
let greeting = "  Hello, Kyaro  "
print(trim(greeting).upper())
`,
	}
	for name, src := range programs {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			out, _ := run(t, src)
			snaps.MatchSnapshot(t, out)
		})
	}
}
