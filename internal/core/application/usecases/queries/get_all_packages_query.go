// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Queries bypass the aggregates and read optimized models straight from
// the database.
package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAllPackagesQueryIsNotConstructed = errors.New(
		"GetAllPackagesQuery must be created via NewGetAllPackagesQuery constructor",
	)
)

// GetAllPackagesQuery retrieves every package in the system regardless
// of status or assignment. Used by the administrative listing.
//
// Example:
//
//	query := NewGetAllPackagesQuery()
//	handler := NewGetAllPackagesQueryHandler(db)
//
//	packages, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve packages: %w", err)
//	}
type GetAllPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPackagesQuery creates a query to retrieve all packages.
func NewGetAllPackagesQuery() GetAllPackagesQuery {
	return GetAllPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPackagesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPackagesQueryIsNotConstructed)
}

// GetAllPackagesQueryResponse represents a package row in the read
// model. CourierID is nil for unassigned packages.
type GetAllPackagesQueryResponse struct {
	ID           uint
	TrackingCode string
	ClientName   string
	Quantity     int
	Weight       float64
	Address      string
	Status       string
	CourierID    *uint
}
