package cryptox

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, VerifyPassword("Sup3rSecret!", hash))
	require.Error(t, VerifyPassword("wrong-password", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	h1, err := HashPassword("same-input")
	require.NoError(t, err)
	h2, err := HashPassword("same-input")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "each hash must use a fresh salt")
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not argon2id", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=1,t=1,p=1$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, VerifyPassword("anything", tt.hash))
		})
	}
}
