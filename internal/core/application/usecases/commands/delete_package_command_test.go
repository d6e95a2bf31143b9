package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeletePackageCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeletePackageCommand(3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), cmd.PackageID())
}

func TestNewDeletePackageCommand_ZeroPackageID(t *testing.T) {
	_, err := commands.NewDeletePackageCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPackageIDIsRequired)
}
