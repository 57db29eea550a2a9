package ctype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T) func(*Type, error) *Type {
	t.Helper()

	return func(typ *Type, err error) *Type {
		t.Helper()
		require.NoError(t, err)
		require.NotNil(t, typ)

		return typ
	}
}

func assertEqualTypes(t *testing.T, expected, actual *Type) {
	t.Helper()

	eq, err := Equal(expected, actual)
	require.NoError(t, err)
	require.True(t, eq, "expected %s, got %s", expected, actual)

	eq, err = Equal(actual, expected)
	require.NoError(t, err)
	require.True(t, eq, "expected %s, got %s (reversed)", expected, actual)
}

func assertNotEqualTypes(t *testing.T, expected, actual *Type) {
	t.Helper()

	eq, err := Equal(expected, actual)
	require.NoError(t, err)
	require.False(t, eq, "expected %s to differ from %s", expected, actual)

	eq, err = Equal(actual, expected)
	require.NoError(t, err)
	require.False(t, eq, "expected %s to differ from %s (reversed)", actual, expected)
}

// intType is int_type("int", 4, true) with optional qualifiers.
func intType(t *testing.T, quals ...Qualifiers) *Type {
	t.Helper()

	return mustType(t)(NewInt("int", 4, true, quals...))
}

func uintType(t *testing.T) *Type {
	t.Helper()

	return mustType(t)(NewInt("unsigned int", 4, false))
}

func voidType(t *testing.T, quals ...Qualifiers) *Type {
	t.Helper()

	return mustType(t)(NewVoid(quals...))
}

func size(n uint64) *uint64 {
	return &n
}

func name(s string) *string {
	return &s
}
