// Package repl implements Kyaro's interactive Read-Eval-Print Loop: one
// line of input is lexed, parsed, and evaluated as a full program, and
// any non-null result is printed using the same rules as `print`.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/kyarolang/kyaro/eval"
	"github.com/kyarolang/kyaro/intrinsics"
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for one interactive session.
type Repl struct {
	Banner      string
	Version     string
	Author      string
	Line        string
	Prompt      string
	HistoryPath string
}

func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Kyaro!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL until '.exit', EOF, or a readline error.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer, HistoryFile: r.HistoryPath})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	intrinsics.Output = writer
	evaluator := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			break
		}
		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good Bye!\n")
			break
		}
		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery parses and evaluates one line, printing the result
// or error without letting a stray panic kill the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Error: %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Eval(prog, evaluator.Scp)
	if result == nil {
		return
	}
	if errv, ok := result.(*value.Error); ok {
		redColor.Fprintf(writer, "%s\n", errv.String())
		return
	}
	if _, isNull := result.(value.Null); isNull {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", value.Display(result))
}
