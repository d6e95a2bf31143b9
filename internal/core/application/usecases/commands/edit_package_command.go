package commands

import (
	"errors"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var (
	ErrEditPackageCommandIsNotConstructed = errors.New(
		"EditPackageCommand must be created via NewEditPackageCommand constructor",
	)
	ErrPackageIDIsRequired = errors.New("package id is required")
	ErrPatchIsEmpty        = errors.New("patch must set at least one field")
)

// EditPackageCommand represents a courier updating one of their own
// packages. The update is scoped by both package id and the courier's
// user id; a package owned by someone else looks exactly like a
// missing one.
type EditPackageCommand struct { //nolint:recvcheck //using for validation
	packageID uint
	userID    uint
	patch     ports.PackagePatch

	guard guard.ConstructorGuard
}

// NewEditPackageCommand creates an ownership-scoped package update command.
func NewEditPackageCommand(packageID, userID uint, patch ports.PackagePatch) (EditPackageCommand, error) {
	cmd := EditPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setUserID(userID),
		cmd.setPatch(patch),
	); err != nil {
		return EditPackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditPackageCommand) Validate() error {
	return c.guard.Validate(ErrEditPackageCommandIsNotConstructed)
}

// PackageID returns the id of the package to update.
func (c EditPackageCommand) PackageID() uint {
	return c.packageID
}

// UserID returns the requesting courier's user id.
func (c EditPackageCommand) UserID() uint {
	return c.userID
}

// Patch returns the fields to change.
func (c EditPackageCommand) Patch() ports.PackagePatch {
	return c.patch
}

func (c *EditPackageCommand) setPackageID(packageID uint) error {
	if packageID == 0 {
		return ErrPackageIDIsRequired
	}

	c.packageID = packageID
	return nil
}

func (c *EditPackageCommand) setUserID(userID uint) error {
	if userID == 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *EditPackageCommand) setPatch(patch ports.PackagePatch) error {
	if patch.IsEmpty() {
		return ErrPatchIsEmpty
	}

	c.patch = patch
	return nil
}
