package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"flp/internal/errors"
	"flp/internal/machine"
	"flp/internal/parser"
	"flp/internal/translate"
)

const defaultFuel = 10000

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: flp <file> [fuel]")
		os.Exit(1)
	}

	path := os.Args[1]
	fuel := defaultFuel
	if len(os.Args) >= 3 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n < 0 {
			color.Red("invalid fuel argument %q", os.Args[2])
			os.Exit(1)
		}
		fuel = n
	}

	prog, err := parser.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	tp, err := translate.Translate(prog)
	if err != nil {
		reporter := errors.NewErrorReporter(path, "")
		fmt.Print(reporter.FormatError(errors.CompilerError{
			Level:   errors.Error,
			Code:    errors.ErrorUndefinedIdentifier,
			Message: err.Error(),
		}))
		os.Exit(1)
	}

	res, err := machine.Eval(tp.Comp, tp.Env, fuel)
	if err != nil {
		reporter := errors.NewErrorReporter(path, "")
		fmt.Print(reporter.FormatError(errors.Structural(err)))
		os.Exit(1)
	}

	for _, answer := range res.Answers {
		fmt.Println(answer.String())
	}

	if res.Exhausted {
		reporter := errors.NewErrorReporter(path, "")
		fmt.Print(reporter.FormatError(errors.FuelExhausted(len(res.Answers))))
	}

	color.Green("%d answer(s)", len(res.Answers))
}
