package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flp/internal/cbpv"
)

func TestUnifyGroundValueWithItselfSucceedsWithNoNewBindings(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	v := cbpv.Cons(cbpv.Zero(), cbpv.Cons(cbpv.Succ(cbpv.Zero()), cbpv.Nil()))

	ok, req, err := Unify(v, v, nil, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.True(t, ok)
}

func TestUnifyMismatchedConstructorsFail(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ok, req, err := Unify(cbpv.Zero(), cbpv.Succ(cbpv.Zero()), nil, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.False(t, ok)
}

func TestUnifyBindsUnboundLogicVar(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)
	var env *Env
	env = env.ExtendLVar(ident)

	ok, req, err := Unify(cbpv.Var(0), cbpv.Succ(cbpv.Zero()), env, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.True(t, ok)

	bound, found := lenv.Lookup(ident)
	require.True(t, found)
	assert.Equal(t, cbpv.Succ(cbpv.Zero()), bound.(*ClosVC).Val)
}

func TestUnifyOccursCheckFails(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := lenv.Fresh(cbpv.Nat)
	var env *Env
	env = env.ExtendLVar(ident)

	// Succ(n) =:= n — occurs-check failure (spec §8 scenario 4).
	ok, req, err := Unify(cbpv.Succ(cbpv.Var(0)), cbpv.Var(0), env, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.False(t, ok)
}

func TestUnifyTwoUnboundLogicVarsAliases(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	a := lenv.Fresh(cbpv.Nat)
	b := lenv.Fresh(cbpv.Nat)
	var env *Env
	env = env.ExtendLVar(a).ExtendLVar(b)

	ok, req, err := Unify(cbpv.Var(1), cbpv.Var(0), env, lenv, senv)
	require.NoError(t, err)
	assert.Nil(t, req)
	assert.True(t, ok)

	lenv.Bind(a, Clos(cbpv.Zero(), nil))
	bound, found := lenv.Lookup(b)
	require.True(t, found, "aliased variables must share a binding")
	assert.Equal(t, cbpv.Zero(), bound.(*ClosVC).Val)
}

func TestUnifySuspendsOnPendingSuspension(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	ident := senv.Fresh(cbpv.Return(cbpv.Zero()), nil)
	var env *Env
	env = env.ExtendSusp(ident)

	ok, req, err := Unify(cbpv.Var(0), cbpv.Zero(), env, lenv, senv)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, req)
	assert.Equal(t, ident, req.Ident)
}

func TestUnifyThunkIsStructuralError(t *testing.T) {
	lenv, senv := NewLogicEnv(), NewSuspEnv()
	_, _, err := Unify(cbpv.Thunk(cbpv.Return(cbpv.Zero())), cbpv.Thunk(cbpv.Return(cbpv.Zero())), nil, lenv, senv)
	assert.Error(t, err)
}
