// Package repl is an interactive driver over the interpreter: read a
// statement, translate it, run it to exhaustion against a small fuel
// budget, print the answers. Adapted from the teacher's repl.go, which
// referenced a lexer/parser pair ("kanso-lang/lexer") that does not
// exist anywhere in this tree and could never have run; it is rebuilt
// here against internal/parser and internal/translate rather than
// deleted outright.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"flp/internal/errors"
	"flp/internal/machine"
	"flp/internal/parser"
	"flp/internal/translate"
)

const prompt = ">> "
const replFuel = 2000

// Start runs the read-eval-print loop against in, writing to out until
// in is exhausted. A line ending in "." is evaluated immediately;
// anything shorter accumulates across lines until either a "."
// terminates it or the user types ";;" alone to force evaluation of
// whatever has been typed so far.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if strings.TrimSpace(line) == ";;" {
			evalAndPrint(out, buf.String())
			buf.Reset()
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		if strings.HasSuffix(strings.TrimSpace(line), ".") {
			evalAndPrint(out, buf.String())
			buf.Reset()
		}
	}
}

func evalAndPrint(out io.Writer, src string) {
	src = strings.TrimSpace(src)
	if src == "" {
		return
	}

	reporter := errors.NewErrorReporter("<repl>", src)
	green := color.New(color.FgGreen).SprintfFunc()
	yellow := color.New(color.FgYellow).SprintfFunc()
	red := color.New(color.FgRed).SprintfFunc()

	prog, err := parser.ParseString("<repl>", src)
	if err != nil {
		return
	}

	tp, err := translate.Translate(prog)
	if err != nil {
		fmt.Fprintln(out, red("%s", err.Error()))
		return
	}

	res, err := machine.Eval(tp.Comp, tp.Env, replFuel)
	if err != nil {
		fmt.Fprint(out, reporter.FormatError(errors.Structural(err)))
		return
	}

	for _, answer := range res.Answers {
		fmt.Fprintln(out, green("%s", answer.String()))
	}
	if len(res.Answers) == 0 {
		fmt.Fprintln(out, yellow("no answers"))
	}
	if res.Exhausted {
		fmt.Fprint(out, reporter.FormatError(errors.FuelExhausted(len(res.Answers))))
	}
}
