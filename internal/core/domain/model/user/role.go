package user

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Role classifies what a user may do. Admins hold unscoped CRUD
// authority over packages and users; delivery couriers are restricted
// to packages assigned to them. Route gates enforce the mapping before
// any use case runs.
type Role string

const (
	// RoleAdmin grants unscoped administrative authority.
	RoleAdmin Role = "admin"

	// RoleDelivery marks a courier restricted to owned packages.
	RoleDelivery Role = "delivery"
)

// RoleFromString parses the wire representation of a role.
func RoleFromString(value string) (Role, error) {
	role := Role(value)
	if err := role.Validate(); err != nil {
		return "", err
	}

	return role, nil
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a valid role", string(r)),
		)
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}
