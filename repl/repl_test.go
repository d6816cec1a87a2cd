package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartEvaluatesASingleStatementLine(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("return 1.\n")

	Start(in, &out)

	assert.Contains(t, out.String(), "1")
}

func TestStartAccumulatesMultipleLinesUntilDot(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("return\n1\n.\n")

	Start(in, &out)

	assert.Contains(t, out.String(), "1")
}

func TestStartReportsNoAnswersForAFailedUnification(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("exists x : Nat. x =:= Zero. x =:= Succ Zero. return x.\n")

	Start(in, &out)

	assert.Contains(t, out.String(), "no answers")
}

func TestStartIgnoresEmptyLines(t *testing.T) {
	var out strings.Builder
	in := strings.NewReader("\nreturn 3.\n")

	Start(in, &out)

	assert.Contains(t, out.String(), "3")
}
