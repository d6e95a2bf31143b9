package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetDeliveryPackagesQueryIsNotConstructed = errors.New(
		"GetDeliveryPackagesQuery must be created via NewGetDeliveryPackagesQuery constructor",
	)
	ErrUserIDIsRequired = errors.New("user id is required")
)

// GetDeliveryPackagesQuery retrieves the packages assigned to one
// courier. Used by couriers inspecting their own workload and by
// administrators inspecting any courier's.
type GetDeliveryPackagesQuery struct {
	userID uint

	guard guard.ConstructorGuard
}

// NewGetDeliveryPackagesQuery creates a query for the given courier's packages.
func NewGetDeliveryPackagesQuery(userID uint) (GetDeliveryPackagesQuery, error) {
	if userID == 0 {
		return GetDeliveryPackagesQuery{}, ErrUserIDIsRequired
	}

	return GetDeliveryPackagesQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPackagesQueryIsNotConstructed)
}

// UserID returns the courier whose packages are requested.
func (q GetDeliveryPackagesQuery) UserID() uint {
	return q.userID
}

// GetDeliveryPackagesQueryResponse represents an assigned package row
// in the read model.
type GetDeliveryPackagesQueryResponse struct {
	ID           uint
	TrackingCode string
	ClientName   string
	Quantity     int
	Weight       float64
	Address      string
	Status       string
	CourierID    uint
}
