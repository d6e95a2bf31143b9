package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAuthenticateUserCommand("courier@dispatch.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "courier@dispatch.local", cmd.Email())
	assert.Equal(t, "s3cret", cmd.Password())
}

func TestNewAuthenticateUserCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand("", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestNewAuthenticateUserCommand_EmptyPassword(t *testing.T) {
	_, err := commands.NewAuthenticateUserCommand("courier@dispatch.local", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
}
