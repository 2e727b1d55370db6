// Command mlrepl is the UI shell's entry point (§1): run a source file,
// evaluate a one-off expression with -e, or fall into an interactive
// REPL when no file and no expression are given. Grounded on the overall
// shape of the teacher's cmd/funxy/main.go (flag handling, stdin piping,
// panic-recovery wrapper) but with none of its VM/bytecode/build/ext
// surface, which has no counterpart in a tree-walking-only interpreter.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/funvibe/mlrepl/pkg/cli"
	"github.com/funvibe/mlrepl/pkg/driver"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	args := os.Args[1:]

	if len(args) >= 1 && (args[0] == "-e" || args[0] == "--eval") {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: -e requires an expression argument")
			os.Exit(1)
		}
		if !cli.EvalOnce(args[1], os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		return
	}

	if len(args) >= 1 && (args[0] == "-trace" || args[0] == "--trace") {
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Error: -trace requires an expression argument")
			os.Exit(1)
		}
		runTrace(args[1])
		return
	}

	if len(args) >= 1 && !strings.HasPrefix(args[0], "-") {
		runFile(args[0])
		return
	}

	if info, err := os.Stdin.Stat(); err == nil && (info.Mode()&os.ModeCharDevice) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %s\n", err)
			os.Exit(1)
		}
		if !cli.EvalOnce(strings.TrimSpace(string(source)), os.Stdout, os.Stderr) {
			os.Exit(1)
		}
		return
	}

	cli.New(os.Stdin, os.Stdout).Run(os.Stdout)
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", path, err)
		os.Exit(1)
	}

	val, err := driver.EvalModule(string(source), "main")
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Println(val.String())
}

func runTrace(source string) {
	val, rendered, err := driver.Trace(source)
	fmt.Print(rendered)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Println(val.String())
}
