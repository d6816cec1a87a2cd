package cbpv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatPrinting(t *testing.T) {
	three := Succ(Succ(Succ(Zero())))
	assert.Equal(t, "3", three.String())
}

func TestListPrinting(t *testing.T) {
	list := Cons(Zero(), Cons(Succ(Zero()), Nil()))
	assert.Equal(t, "[0, 1]", list.String())
}

func TestPairAndSumPrinting(t *testing.T) {
	assert.Equal(t, "(0, 1)", Pair(Zero(), Succ(Zero())).String())
	assert.Equal(t, "inl(0)", Inl(Zero()).String())
	assert.Equal(t, "inr(0)", Inr(Zero()).String())
}

func TestThunkPrintingIsOpaque(t *testing.T) {
	th := Thunk(Return(Zero()))
	assert.Contains(t, th.String(), "thunk")
}
