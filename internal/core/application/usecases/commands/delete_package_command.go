package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents an administrator removing a package.
// Deletion is terminal; there is no soft-delete or restore.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID uint

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to delete the package with the given id.
func NewDeletePackageCommand(packageID uint) (DeletePackageCommand, error) {
	cmd := DeletePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPackageID(packageID); err != nil {
		return DeletePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// PackageID returns the id of the package to delete.
func (c DeletePackageCommand) PackageID() uint {
	return c.packageID
}

func (c *DeletePackageCommand) setPackageID(packageID uint) error {
	if packageID == 0 {
		return ErrPackageIDIsRequired
	}

	c.packageID = packageID
	return nil
}
