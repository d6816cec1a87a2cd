package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flp/internal/cbpv"
)

func TestSuspEnvFreshIsPending(t *testing.T) {
	s := NewSuspEnv()
	ident := s.Fresh(cbpv.Return(cbpv.Zero()), nil)

	bound, pending, err := s.Lookup(ident)
	require.NoError(t, err)
	assert.Nil(t, bound)
	require.NotNil(t, pending)
	assert.Equal(t, cbpv.Return(cbpv.Zero()), pending.Comp)
}

func TestSuspEnvSetResolvesPending(t *testing.T) {
	s := NewSuspEnv()
	ident := s.Fresh(cbpv.Return(cbpv.Zero()), nil)
	s.Set(ident, Clos(cbpv.Zero(), nil))

	bound, pending, err := s.Lookup(ident)
	require.NoError(t, err)
	assert.Nil(t, pending)
	assert.Equal(t, cbpv.Zero(), bound.(*ClosVC).Val)
}

func TestSuspEnvUnknownIdentErrors(t *testing.T) {
	s := NewSuspEnv()
	_, _, err := s.Lookup(Ident(7))
	assert.Error(t, err)
}

func TestSuspEnvCloneIsIndependent(t *testing.T) {
	s := NewSuspEnv()
	ident := s.Fresh(cbpv.Return(cbpv.Zero()), nil)
	clone := s.Clone()
	clone.Set(ident, Clos(cbpv.Zero(), nil))

	_, pending, _ := s.Lookup(ident)
	assert.NotNil(t, pending, "setting a clone must not affect the original")
}
