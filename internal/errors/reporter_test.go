package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flp/internal/ast"
)

func TestErrorReporterFormatsUndefinedIdentifier(t *testing.T) {
	source := "fn id x = y.\nid 1."
	reporter := NewErrorReporter("test.flp", source)

	err := UndefinedIdentifier("y", ast.Position{Line: 1, Column: 11})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndefinedIdentifier+"]")
	assert.Contains(t, formatted, `"y"`)
	assert.Contains(t, formatted, "test.flp:1:11")
}

func TestFuelExhaustedIsAWarningNotAFatalError(t *testing.T) {
	err := FuelExhausted(3)
	assert.Equal(t, Warning, err.Level)
	assert.Equal(t, ErrorFuelExhausted, err.Code)
	assert.Contains(t, err.Message, "3 answer")
}

func TestStructuralWrapsTheUnderlyingError(t *testing.T) {
	err := Structural(assertionError{"lambda met an empty stack"})
	assert.Equal(t, Error, err.Level)
	assert.Equal(t, ErrorStructural, err.Code)
	assert.Contains(t, err.Message, "lambda met an empty stack")
}

type assertionError struct{ msg string }

func (e assertionError) Error() string { return e.msg }
