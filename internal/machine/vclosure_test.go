package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flp/internal/cbpv"
)

func TestCloseHeadOnGroundConstructorIsStable(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	vc := Clos(cbpv.Zero(), nil)

	once, req, err := CloseHead(vc, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)

	twice, req2, err2 := CloseHead(once, lenv, senv)
	require.NoError(t, err2)
	assert.Nil(t, req2)
	assert.Equal(t, once, twice, "close_head must be idempotent")
}

func TestCloseHeadFollowsVarIndex(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	var env *Env
	env = env.ExtendVal(cbpv.Succ(cbpv.Zero()), env)

	head, req, err := CloseHead(Clos(cbpv.Var(0), env), lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, cbpv.Succ(cbpv.Zero()), head.(*ClosVC).Val)
}

func TestCloseHeadFollowsBoundLogicVar(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)
	lenv.Bind(ident, Clos(cbpv.Zero(), nil))

	head, req, err := CloseHead(LogicVarRef(ident), lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.Equal(t, cbpv.Zero(), head.(*ClosVC).Val)
}

func TestCloseHeadReturnsUnboundLogicVar(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)

	head, req, err := CloseHead(LogicVarRef(ident), lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	lv, ok := head.(*LogicVarVC)
	require.True(t, ok)
	assert.Equal(t, ident, lv.Ident)
}

func TestCloseHeadSignalsPendingSuspension(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := senv.Fresh(cbpv.Return(cbpv.Zero()), nil)

	_, req, err := CloseHead(SuspRef(ident), lenv, senv)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, ident, req.Ident)
}

func TestOccursCheckDetectsSelfReference(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)

	occurs, req, err := OccursLVar(Clos(cbpv.Succ(cbpv.Var(0)), EmptyEnv().ExtendLVar(ident)), ident, lenv, senv)
	require.NoError(t, err)
	require.Nil(t, req)
	assert.True(t, occurs)
}

func TestOccursCheckGroundValueIsFalse(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)

	occurs, req, err := OccursLVar(Clos(cbpv.Succ(cbpv.Zero()), nil), ident, lenv, senv)
	require.NoError(t, err)
	require.Nil(t, req)
	assert.False(t, occurs)
}

func TestOccursCheckSuspendsOnPendingSuspension(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)
	suspIdent := senv.Fresh(cbpv.Return(cbpv.Zero()), nil)

	occurs, req, err := OccursLVar(Clos(cbpv.Succ(cbpv.Var(0)), EmptyEnv().ExtendSusp(suspIdent)), ident, lenv, senv)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, suspIdent, req.Ident)
	assert.False(t, occurs)
}

func TestCloseValGround(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	v, err := CloseVal(Clos(cbpv.Succ(cbpv.Succ(cbpv.Zero())), nil), lenv, senv, false)
	require.NoError(t, err)
	assert.Equal(t, cbpv.Succ(cbpv.Succ(cbpv.Zero())), v)
}

func TestCloseValSymbolicSurfacesFreeVar(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)

	v, err := CloseVal(LogicVarRef(ident), lenv, senv, true)
	require.NoError(t, err)
	assert.Equal(t, cbpv.FreeVar(int(ident)), v)
}

func TestCloseValStrictErrorsOnUnboundVar(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)

	_, err := CloseVal(LogicVarRef(ident), lenv, senv, false)
	assert.Error(t, err)
}

func TestFindSuspLocatesReferencedPending(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := senv.Fresh(cbpv.Return(cbpv.Zero()), nil)

	req, err := FindSusp(Clos(cbpv.Succ(cbpv.Var(0)), EmptyEnv().ExtendSusp(ident)), lenv, senv)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, ident, req.Ident)
}

func TestFindSuspGroundValueIsNil(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	req, err := FindSusp(Clos(cbpv.Succ(cbpv.Zero()), nil), lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
}
