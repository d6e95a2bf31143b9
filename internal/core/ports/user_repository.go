package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/user"
)

// ErrEmailAlreadyTaken is returned by Add when the email collides with
// an existing account. The unique constraint lives in the store; the
// repository translates its violation into this sentinel.
var ErrEmailAlreadyTaken = errors.New("email is already taken")

// UserPatch carries the optional fields of a partial user update.
// Nil fields are left untouched.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	Role         *user.Role
	Active       *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil &&
		p.PasswordHash == nil &&
		p.Role == nil &&
		p.Active == nil
}

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user and returns it with its generated id.
	// Returns ErrEmailAlreadyTaken on an email collision.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	// Get retrieves a user by its identifier.
	// Returns errs.ErrObjectNotFound when no such user exists.
	Get(ctx context.Context, id uint) (*user.User, error)

	// GetByEmail retrieves a user by its unique email address.
	// Returns errs.ErrObjectNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// Update applies a patch to the user matching id and returns the
	// updated aggregate. Returns errs.ErrObjectNotFound when no row
	// matched.
	Update(ctx context.Context, id uint, patch UserPatch) (*user.User, error)

	// Delete removes the user by id.
	// Returns errs.ErrObjectNotFound when zero rows were affected.
	Delete(ctx context.Context, id uint) error
}
