package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents an administrator removing an account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID uint

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete the user with the given id.
func NewDeleteUserCommand(userID uint) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the id of the user to delete.
func (c DeleteUserCommand) UserID() uint {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(userID uint) error {
	if userID == 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}
