package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryUsersQueryIsNotConstructed = errors.New(
		"GetDeliveryUsersQuery must be created via NewGetDeliveryUsersQuery constructor",
	)
)

// GetDeliveryUsersQuery retrieves courier accounts. When ActiveOnly is
// set, inactive couriers are filtered out.
type GetDeliveryUsersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryUsersQuery creates a query to retrieve courier accounts.
func NewGetDeliveryUsersQuery(activeOnly bool) GetDeliveryUsersQuery {
	return GetDeliveryUsersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryUsersQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive couriers are excluded.
func (q GetDeliveryUsersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetDeliveryUsersQueryResponse represents a courier account in the
// read model. The password hash never leaves the store through this
// query.
type GetDeliveryUsersQueryResponse struct {
	ID     uint
	Email  string
	Role   string
	Active bool
}
