package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringPlainReturn(t *testing.T) {
	prog, err := ParseString("test.flp", "return 0.")
	require.NoError(t, err)
	require.Len(t, prog.Decls, 0)
	require.NotNil(t, prog.Main)
	assert.Equal(t, "return 0", prog.Main.String())
}

func TestParseStringFunctionDecl(t *testing.T) {
	prog, err := ParseString("test.flp", "fn id x = x.\nid 0.")
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
	assert.Equal(t, "id x = x.", prog.Decls[0].String())
	require.NotNil(t, prog.Main)
	assert.Equal(t, "id 0", prog.Main.String())
}

func TestParseStringExistsAndEquate(t *testing.T) {
	prog, err := ParseString("test.flp", "exists n : Nat. n =:= 1. return n.")
	require.NoError(t, err)
	require.NotNil(t, prog.Main)
	assert.Equal(t, "exists n : Nat. n =:= 1. return n", prog.Main.String())
}

func TestParseStringChoice(t *testing.T) {
	prog, err := ParseString("test.flp", "0 <> 1 <> 2.")
	require.NoError(t, err)
	require.NotNil(t, prog.Main)
	assert.Equal(t, "0 <> 1 <> 2", prog.Main.String())
}

func TestParseStringIfzInFunctionBody(t *testing.T) {
	src := "fn pred n = ifz n { zero -> 0 ; succ n1 -> n1 }.\npred 1."
	prog, err := ParseString("test.flp", src)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
}

func TestParseStringRejectsGarbage(t *testing.T) {
	_, err := ParseString("test.flp", "fn = = =")
	assert.Error(t, err)
}
