package token_test

import (
	"testing"
	"time"

	"dispatch/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_IssueAndVerify(t *testing.T) {
	signer := token.NewSigner([]byte("test-secret"), time.Hour)

	signed, err := signer.Issue(7, "delivery")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := signer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "delivery", claims.Role)
}

func TestSigner_Verify_RejectsForeignSecret(t *testing.T) {
	signer := token.NewSigner([]byte("test-secret"), time.Hour)
	other := token.NewSigner([]byte("other-secret"), time.Hour)

	signed, err := other.Issue(1, "admin")
	require.NoError(t, err)

	_, err = signer.Verify(signed)
	require.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestSigner_Verify_RejectsExpiredToken(t *testing.T) {
	signer := token.NewSigner([]byte("test-secret"), -time.Minute)

	signed, err := signer.Issue(1, "admin")
	require.NoError(t, err)

	_, err = signer.Verify(signed)
	require.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestSigner_Verify_RejectsGarbage(t *testing.T) {
	signer := token.NewSigner([]byte("test-secret"), time.Hour)

	_, err := signer.Verify("not-a-token")
	require.ErrorIs(t, err, token.ErrTokenIsInvalid)
}
