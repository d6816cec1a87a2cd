package errors

import (
	"fmt"

	"flp/internal/ast"
)

// UndefinedIdentifier builds the diagnostic for a name with no binding
// in scope at translation time (internal/translate).
func UndefinedIdentifier(name string, pos ast.Position) CompilerError {
	return CompilerError{
		Level:    Error,
		Code:     ErrorUndefinedIdentifier,
		Message:  fmt.Sprintf("cannot find %q in this scope", name),
		Position: pos,
		Length:   len(name),
		HelpText: "top-level functions may call themselves and any function declared earlier in the file, but not one declared later",
	}
}

// FuelExhausted builds the driver's resource-exhaustion notice (spec
// §7 kind 3): not a fatal error, just a report that search stopped
// before the frontier emptied.
func FuelExhausted(collected int) CompilerError {
	return CompilerError{
		Level:    Warning,
		Code:     ErrorFuelExhausted,
		Message:  fmt.Sprintf("fuel exhausted with %d answer(s) collected so far", collected),
		HelpText: "increase the fuel budget to explore more of the search frontier",
	}
}

// Structural builds the fatal diagnostic for spec §7 kind 1: an
// ill-formed IR or impossible machine state. The CLI surfaces this
// instead of letting the underlying Go error/panic reach the user raw.
func Structural(cause error) CompilerError {
	return CompilerError{
		Level:   Error,
		Code:    ErrorStructural,
		Message: cause.Error(),
		HelpText: "this indicates a bug in the translator or the machine, not in the source program",
	}
}
