package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePackageCommand_ValidInput(t *testing.T) {
	status := parcel.Inactive
	patch := ports.PackagePatch{Status: &status}
	cmd, err := commands.NewUpdatePackageCommand(3, patch)
	require.NoError(t, err)
	assert.Equal(t, uint(3), cmd.PackageID())
	assert.Equal(t, patch, cmd.Patch())
}

func TestNewUpdatePackageCommand_ZeroPackageID(t *testing.T) {
	_, err := commands.NewUpdatePackageCommand(0, addressPatch("12 Elm St"))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPackageIDIsRequired)
}

func TestNewUpdatePackageCommand_EmptyPatch(t *testing.T) {
	_, err := commands.NewUpdatePackageCommand(3, ports.PackagePatch{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPatchIsEmpty)
}
