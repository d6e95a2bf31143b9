package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents an administrator editing an account.
// Optional fields are nil when unchanged; a set password field carries
// the plain credential and is hashed by the handler.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   uint
	email    *string
	password *string
	role     *user.Role
	active   *bool

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to edit the given account.
// At least one field must be set.
func NewUpdateUserCommand(userID uint, email, password *string, role *user.Role, active *bool) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	cmd.active = active

	if cmd.email == nil && cmd.password == nil && cmd.role == nil && cmd.active == nil {
		return UpdateUserCommand{}, ErrPatchIsEmpty
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the id of the account to edit.
func (c UpdateUserCommand) UserID() uint {
	return c.userID
}

// Email returns the new email, nil when unchanged.
func (c UpdateUserCommand) Email() *string {
	return c.email
}

// Password returns the new plain credential, nil when unchanged.
func (c UpdateUserCommand) Password() *string {
	return c.password
}

// Role returns the new role, nil when unchanged.
func (c UpdateUserCommand) Role() *user.Role {
	return c.role
}

// Active returns the new active flag, nil when unchanged.
func (c UpdateUserCommand) Active() *bool {
	return c.active
}

func (c *UpdateUserCommand) setUserID(userID uint) error {
	if userID == 0 {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	if *email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(*email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *UpdateUserCommand) setPassword(password *string) error {
	if password == nil {
		return nil
	}
	if *password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *UpdateUserCommand) setRole(role *user.Role) error {
	if role == nil {
		return nil
	}
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
