//go:build unit

package password_test

import (
	"testing"

	"giggo-server/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	require.NoError(t, password.ComparePassword(hash, "password123"))
	require.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
}

func TestEmptyInputsAreRejected(t *testing.T) {
	_, err := password.HashPassword("")
	require.ErrorIs(t, err, password.ErrInvalidPassword)

	require.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)
	require.ErrorIs(t, password.ComparePassword("some-hash", ""), password.ErrInvalidPassword)
}
