// Command kyaro is Kyaro's command-line driver: no arguments enters the
// REPL, exactly one positional argument executes that file, and any
// other usage is an error.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kyarolang/kyaro/eval"
	"github.com/kyarolang/kyaro/internal/config"
	"github.com/kyarolang/kyaro/intrinsics"
	"github.com/kyarolang/kyaro/parser"
	"github.com/kyarolang/kyaro/repl"
	"github.com/kyarolang/kyaro/value"
)

const version = "v0.1.0"
const author = "kyaro authors"

const banner = `
  _  ____   _____ __  __ _____
 | |/ /\ \ / / _ \|  \/  / _ \
 | ' /  \ V / / | | |\/| | | |
 | . \   | | |_| | |  | | |_| |
 |_|\_\  |_|\___/|_|  |_|\___/
`

const line = "----------------------------------------------------------------"

var (
	cyanColor  = color.New(color.FgCyan)
	configPath string
	printAST   bool
)

func main() {
	root := &cobra.Command{
		Use:     "kyaro [file]",
		Short:   "Kyaro: a small dynamically-typed scripting language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			if len(args) == 0 {
				prompt := "kyaro> "
				if cfg.Prompt != "" {
					prompt = cfg.Prompt
				}
				repBanner := banner
				if cfg.Banner != "" {
					repBanner = cfg.Banner
				}
				repler := repl.NewRepl(repBanner, version, author, line, prompt)
				repler.HistoryPath = cfg.HistoryPath
				repler.Start(os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
	}
	root.Flags().StringVar(&configPath, "config", ".kyarorc.yaml", "path to an optional config file")
	root.Flags().BoolVar(&printAST, "print-ast", false, "print the parsed AST before evaluating")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stdout, "File not found: %s\n", path)
			os.Exit(1)
		}
		return err
	}

	p := parser.NewParser(string(source))
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			fmt.Fprintln(os.Stdout, e)
		}
		os.Exit(1)
	}

	if printAST {
		visitor := NewPrintVisitor()
		cyanColor.Fprintln(os.Stdout, visitor.Print(prog))
	}

	intrinsics.Output = os.Stdout
	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(prog, evaluator.Scp)
	if errv, ok := result.(*value.Error); ok {
		fmt.Fprintln(os.Stdout, errv.String())
		os.Exit(1)
	}
	return nil
}
