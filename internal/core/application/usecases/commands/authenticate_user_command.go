package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand represents a login attempt with email and
// plain credential.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserCommand creates a login command.
func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	cmd := AuthenticateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateUserCommand) Email() string {
	return c.email
}

// Password returns the plain credential to verify.
func (c AuthenticateUserCommand) Password() string {
	return c.password
}

func (c *AuthenticateUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *AuthenticateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
