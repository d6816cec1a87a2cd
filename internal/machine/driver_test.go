package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flp/internal/cbpv"
)

func nat(n int) cbpv.Value {
	v := cbpv.Zero()
	for i := 0; i < n; i++ {
		v = cbpv.Succ(v)
	}
	return v
}

func TestEvalGroundReturnIsImmediatelyDone(t *testing.T) {
	res, err := Eval(cbpv.Return(nat(0)), EmptyEnv(), 10)
	require.NoError(t, err)
	assert.False(t, res.Exhausted)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, nat(0), res.Answers[0])
}

func TestEvalChoiceProducesOneAnswerPerBranch(t *testing.T) {
	comp := cbpv.Choice(
		cbpv.Return(nat(0)),
		cbpv.Return(nat(1)),
		cbpv.Return(nat(2)),
	)
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	assert.False(t, res.Exhausted)
	assert.ElementsMatch(t, []cbpv.Value{nat(0), nat(1), nat(2)}, res.Answers)
}

func TestEvalChoiceWithNoBranchesProducesNoAnswers(t *testing.T) {
	res, err := Eval(cbpv.Choice(), EmptyEnv(), 10)
	require.NoError(t, err)
	assert.Empty(t, res.Answers)
	assert.False(t, res.Exhausted)
}

func TestEvalExistsAloneSurfacesAFreeVariable(t *testing.T) {
	comp := cbpv.Exists(cbpv.Nat, cbpv.Return(cbpv.Var(0)))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, cbpv.FreeVar(0), res.Answers[0])
}

func TestEvalExistsWithEquateNarrowsToGroundAnswer(t *testing.T) {
	comp := cbpv.Exists(cbpv.Nat, cbpv.Equate(cbpv.Var(0), nat(1), cbpv.Return(cbpv.Var(0))))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, nat(1), res.Answers[0])
}

func TestEvalGroundEquateMismatchPrunesToNoAnswers(t *testing.T) {
	comp := cbpv.Equate(nat(0), nat(1), cbpv.Return(nat(0)))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	assert.Empty(t, res.Answers)
}

func TestEvalOccursCheckFailurePrunesToNoAnswers(t *testing.T) {
	// exists n. Succ(n) =:= n — no finite Nat satisfies this.
	comp := cbpv.Exists(cbpv.Nat, cbpv.Equate(cbpv.Succ(cbpv.Var(0)), cbpv.Var(0), cbpv.Return(cbpv.Var(0))))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	assert.Empty(t, res.Answers)
}

func TestEvalIfzOnLogicVariableSplitsIntoBothBranches(t *testing.T) {
	// exists n. ifz n { zero -> n ; succ n' -> n' } — zero branch
	// answers the bound 0; the succ branch answers an unbound
	// predecessor, surfaced symbolically.
	comp := cbpv.Exists(cbpv.Nat, cbpv.Ifz(cbpv.Var(0), cbpv.Return(cbpv.Var(0)), cbpv.Return(cbpv.Var(0))))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []cbpv.Value{nat(0), cbpv.FreeVar(1)}, res.Answers)
}

func TestEvalMatchOnLogicVariableSplitsIntoNilAndCons(t *testing.T) {
	// exists xs :: [Nat]. match xs { nil -> 0 ; x :: xs' -> xs' }
	comp := cbpv.Exists(cbpv.List(cbpv.Nat), cbpv.Match(cbpv.Var(0), cbpv.Return(nat(0)), cbpv.Return(cbpv.Var(0))))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []cbpv.Value{nat(0), cbpv.FreeVar(2)}, res.Answers)
}

func TestEvalGenerateAndTestYieldsExactlyOneAnswer(t *testing.T) {
	target := nat(2)
	comp := cbpv.Exists(cbpv.Nat, cbpv.Choice(
		cbpv.Equate(cbpv.Var(0), nat(0), cbpv.Equate(cbpv.Var(0), target, cbpv.Return(cbpv.Var(0)))),
		cbpv.Equate(cbpv.Var(0), nat(1), cbpv.Equate(cbpv.Var(0), target, cbpv.Return(cbpv.Var(0)))),
		cbpv.Equate(cbpv.Var(0), nat(2), cbpv.Equate(cbpv.Var(0), target, cbpv.Return(cbpv.Var(0)))),
	))
	res, err := Eval(comp, EmptyEnv(), 10)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, nat(2), res.Answers[0])
}

func TestEvalRecursiveAdditionForcesSuspendedCall(t *testing.T) {
	// add, closed over m at index 0, recurses on its single argument n:
	//   add = rec self. \n. ifz n { zero -> m ; succ n' -> succ (self n') }
	addBody := cbpv.Lambda(cbpv.Ifz(
		cbpv.Var(0),            // n
		cbpv.Return(cbpv.Var(2)), // m, env = [n, self, m]
		cbpv.Bind(
			cbpv.App(cbpv.Force(cbpv.Var(2)), cbpv.Var(0)), // self n', env = [pred, n, self, m]
			cbpv.Return(cbpv.Succ(cbpv.Var(0))),
		),
	))
	addRec := cbpv.Rec(addBody)

	env := EmptyEnv().ExtendVal(nat(3), EmptyEnv()) // m = 3
	call := cbpv.App(cbpv.Force(cbpv.Thunk(addRec)), nat(1))

	res, err := Eval(call, env, 50)
	require.NoError(t, err)
	require.Len(t, res.Answers, 1)
	assert.Equal(t, nat(4), res.Answers[0])
}

func TestEvalExhaustsFuelOnUnboundedRecursion(t *testing.T) {
	// A computation with no base case: it always produces exactly one
	// live successor per step and never reaches Return, so fuel must
	// run out rather than looping forever.
	var loop cbpv.Computation
	loopThunk := cbpv.Thunk(cbpv.Rec(cbpv.Bind(cbpv.Force(cbpv.Var(0)), cbpv.Return(cbpv.Var(0)))))
	loop = cbpv.Force(loopThunk)

	res, err := Eval(loop, EmptyEnv(), 5)
	require.NoError(t, err)
	assert.Empty(t, res.Answers)
	assert.True(t, res.Exhausted)
}
