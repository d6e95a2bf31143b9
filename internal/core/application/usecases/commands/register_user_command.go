package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrEmailIsInvalid     = errors.New("email is invalid")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents the creation of a new account with a
// plain credential. Hashing happens in the handler; the plain
// credential never reaches the domain or the store.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     user.Role
	active   bool

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user account.
func NewRegisterUserCommand(email, password string, role user.Role, active bool) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the account email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain credential to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// Active reports whether the account starts active.
func (c RegisterUserCommand) Active() bool {
	return c.active
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
