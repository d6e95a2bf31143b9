package commands

import (
	"errors"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePackageCommandIsNotConstructed = errors.New(
	"UpdatePackageCommand must be created via NewUpdatePackageCommand constructor",
)

// UpdatePackageCommand represents an administrator updating any package
// by id alone. No ownership check applies; admin authority is implied
// by route gating, not re-verified here.
type UpdatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID uint
	patch     ports.PackagePatch

	guard guard.ConstructorGuard
}

// NewUpdatePackageCommand creates an unscoped package update command.
func NewUpdatePackageCommand(packageID uint, patch ports.PackagePatch) (UpdatePackageCommand, error) {
	cmd := UpdatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackageCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackageCommandIsNotConstructed)
}

// PackageID returns the id of the package to update.
func (c UpdatePackageCommand) PackageID() uint {
	return c.packageID
}

// Patch returns the fields to change.
func (c UpdatePackageCommand) Patch() ports.PackagePatch {
	return c.patch
}

func (c *UpdatePackageCommand) setPackageID(packageID uint) error {
	if packageID == 0 {
		return ErrPackageIDIsRequired
	}

	c.packageID = packageID
	return nil
}

func (c *UpdatePackageCommand) setPatch(patch ports.PackagePatch) error {
	if patch.IsEmpty() {
		return ErrPatchIsEmpty
	}

	c.patch = patch
	return nil
}
