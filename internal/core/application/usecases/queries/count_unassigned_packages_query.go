package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrCountUnassignedPackagesQueryIsNotConstructed = errors.New(
		"CountUnassignedPackagesQuery must be created via NewCountUnassignedPackagesQuery constructor",
	)
)

// CountUnassignedPackagesQuery counts packages with no courier. Feeds
// the backlog monitoring job.
type CountUnassignedPackagesQuery struct {
	guard guard.ConstructorGuard
}

// NewCountUnassignedPackagesQuery creates a query to count unassigned packages.
func NewCountUnassignedPackagesQuery() CountUnassignedPackagesQuery {
	return CountUnassignedPackagesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountUnassignedPackagesQuery) Validate() error {
	return q.guard.Validate(ErrCountUnassignedPackagesQueryIsNotConstructed)
}
