// Package cli is the minimal UI shell named in §1: read a line, call
// driver.Eval, print the result or error. Grounded on the orchestration
// shape of the teacher's pkg/cli/entry.go, stripped down to the one job
// this system assigns the shell — no VM/bytecode/build/test/help surface,
// since this interpreter has none of those backends.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/mlrepl/pkg/driver"
)

// REPL reads expressions from in, evaluates each with driver.Eval, and
// writes the result (or error) to out. Color is used for the prompt and
// error text only when out is a real terminal (§no semantic effect on
// evaluation, purely cosmetic).
type REPL struct {
	in      *bufio.Scanner
	out     io.Writer
	colored bool
}

// New builds a REPL reading from in and writing to out. color is decided
// by checking whether out is a terminal file descriptor via go-isatty,
// the same check funxy's Term builtin uses to gate ANSI output.
func New(in io.Reader, out *os.File) *REPL {
	return &REPL{
		in:      bufio.NewScanner(in),
		out:     out,
		colored: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

func (r *REPL) color(code, text string) string {
	if !r.colored {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

// Run drives the read-eval-print loop until the input is exhausted. It
// prints a prompt to prompt (separate from out, so a script piping stdin
// doesn't get prompt noise mixed into redirected output).
func (r *REPL) Run(prompt io.Writer) {
	for {
		fmt.Fprint(prompt, r.color("36", "ml> "))
		if !r.in.Scan() {
			return
		}
		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	val, err := driver.Eval(line)
	if err != nil {
		fmt.Fprintln(r.out, r.color("31", err.Error()))
		return
	}
	fmt.Fprintln(r.out, val.String())
}

// EvalOnce evaluates a single expression (the `-e` flag's job) and writes
// its result or error to out, returning whether evaluation succeeded.
func EvalOnce(source string, out, errOut io.Writer) bool {
	val, err := driver.Eval(source)
	if err != nil {
		fmt.Fprintln(errOut, err.Error())
		return false
	}
	fmt.Fprintln(out, val.String())
	return true
}
