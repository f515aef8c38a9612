package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	phc, err := HashPassword("correct horse battery staple", defaultArgonParams())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(phc, "$argon2id$v=19$"), phc)

	ok, err := VerifyPassword("correct horse battery staple", phc)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("wrong password", phc)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("secret password", defaultArgonParams())
	require.NoError(t, err)
	b, err := HashPassword("secret password", defaultArgonParams())
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsGarbagePHC(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-phc-string")
	require.Error(t, err)
}
