package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flp/internal/ast"
	"flp/internal/machine"
	"flp/internal/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseString("test.flp", src)
	require.NoError(t, err)
	return prog
}

func TestTranslatePlainNatReturn(t *testing.T) {
	prog := parseProgram(t, "return 2.")
	tp, err := Translate(prog)
	require.NoError(t, err)

	res, err := machine.Eval(tp.Comp, tp.Env, 50)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, "2", res.Answers[0].String())
}

func TestTranslateIdentityFunctionCall(t *testing.T) {
	prog := parseProgram(t, "fn id x = x.\nid 3.")
	tp, err := Translate(prog)
	require.NoError(t, err)

	res, err := machine.Eval(tp.Comp, tp.Env, 50)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, "3", res.Answers[0].String())
}

func TestTranslateChoiceProducesMultipleAnswers(t *testing.T) {
	prog := parseProgram(t, "0 <> 1 <> 2.")
	tp, err := Translate(prog)
	require.NoError(t, err)

	res, err := machine.Eval(tp.Comp, tp.Env, 50)
	require.NoError(t, err)
	require.Len(t, res.Answers, 3)
}

func TestTranslateExistsAndEquateNarrowsAnswer(t *testing.T) {
	prog := parseProgram(t, "exists n : Nat. n =:= 1. return n.")
	tp, err := Translate(prog)
	require.NoError(t, err)

	res, err := machine.Eval(tp.Comp, tp.Env, 50)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, "1", res.Answers[0].String())
}

func TestTranslateRecursiveFunctionCallsItself(t *testing.T) {
	src := "fn add n m = ifz n { zero -> m ; succ n1 -> Succ (add n1 m) }.\nadd 2 3."
	prog := parseProgram(t, src)
	tp, err := Translate(prog)
	require.NoError(t, err)

	res, err := machine.Eval(tp.Comp, tp.Env, 200)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, "5", res.Answers[0].String())
}

func TestTranslateRejectsUndefinedIdentifier(t *testing.T) {
	prog := parseProgram(t, "return undefined_name.")
	_, err := Translate(prog)
	assert.Error(t, err)
}
