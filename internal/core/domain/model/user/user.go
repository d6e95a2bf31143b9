package user

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User is the identity aggregate. It carries the bcrypt-hashed
// credential and the role the route gates check; the plain credential
// never enters the domain.
type User struct {
	id           uint
	email        string
	passwordHash string
	role         Role
	active       bool

	isConstructed bool
}

// NewUser creates a User from an already hashed credential.
// The id stays zero until the user is persisted.
func NewUser(email, passwordHash string, role Role, active bool) (*User, error) {
	u := &User{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id uint, email, passwordHash string, role Role, active bool) (*User, error) {
	u, err := NewUser(email, passwordHash, role, active)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User was constructed through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// ID returns the user's numeric identifier (zero until persisted).
func (u *User) ID() uint {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's credential.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the user account is active.
func (u *User) IsActive() bool {
	return u.active
}

// CheckPassword verifies a plain credential against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)) == nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// HashPassword produces a bcrypt hash for a plain credential.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
