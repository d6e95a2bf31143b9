package user_test

import (
	"testing"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates valid user", func(t *testing.T) {
		hash, err := user.HashPassword("s3cret")
		require.NoError(t, err)

		u, err := user.NewUser("courier@example.com", hash, user.RoleDelivery, true)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, uint(0), u.ID())
		assert.Equal(t, "courier@example.com", u.Email())
		assert.Equal(t, user.RoleDelivery, u.Role())
		assert.True(t, u.IsActive())
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		cases := []struct {
			name    string
			email   string
			hash    string
			role    user.Role
			wantErr error
		}{
			{"missing email", "", "hash", user.RoleAdmin, errs.ErrValueIsRequired},
			{"malformed email", "not-an-email", "hash", user.RoleAdmin, errs.ErrValueIsInvalid},
			{"missing hash", "a@b.c", "", user.RoleAdmin, errs.ErrValueIsRequired},
			{"unknown role", "a@b.c", "hash", user.Role("root"), errs.ErrValueIsInvalid},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewUser(tc.email, tc.hash, tc.role, true)
				require.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(7, "courier@example.com", "hash", user.RoleDelivery, false)

	require.NoError(t, err)
	assert.Equal(t, uint(7), u.ID())
	assert.False(t, u.IsActive())
}

func TestUser_CheckPassword(t *testing.T) {
	hash, err := user.HashPassword("correct horse")
	require.NoError(t, err)

	u, err := user.NewUser("a@b.c", hash, user.RoleAdmin, true)
	require.NoError(t, err)

	assert.True(t, u.CheckPassword("correct horse"))
	assert.False(t, u.CheckPassword("battery staple"))
	assert.False(t, u.CheckPassword(""))
}

func TestHashPassword(t *testing.T) {
	t.Run("empty credential is rejected", func(t *testing.T) {
		_, err := user.HashPassword("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("hash differs from plain", func(t *testing.T) {
		hash, err := user.HashPassword("s3cret")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)
	})
}

func TestRoleFromString(t *testing.T) {
	admin, err := user.RoleFromString("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, admin)

	delivery, err := user.RoleFromString("delivery")
	require.NoError(t, err)
	assert.Equal(t, user.RoleDelivery, delivery)

	_, err = user.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_Validate_ZeroValue(t *testing.T) {
	var u user.User

	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}
