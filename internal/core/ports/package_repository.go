// Package ports defines the persistence contracts between the core and
// its infrastructure adapters, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/parcel"
)

// PackagePatch carries the optional fields of a partial package update.
// Nil fields are left untouched; set fields replace the stored value.
type PackagePatch struct {
	ClientName *string
	Quantity   *int
	Weight     *float64
	Address    *string
	Status     *parcel.Status
}

// IsEmpty reports whether the patch changes nothing.
func (p PackagePatch) IsEmpty() bool {
	return p.ClientName == nil &&
		p.Quantity == nil &&
		p.Weight == nil &&
		p.Address == nil &&
		p.Status == nil
}

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package and returns it with its generated id.
	Add(ctx context.Context, aggregate *parcel.Package) (*parcel.Package, error)

	// Get retrieves a package by its identifier.
	// Returns errs.ErrObjectNotFound when no such package exists.
	Get(ctx context.Context, id uint) (*parcel.Package, error)

	// GetAllByIDs retrieves every package whose id appears in the list.
	// Missing ids are simply absent from the result; callers comparing
	// requested and resolved counts implement all-or-nothing semantics.
	GetAllByIDs(ctx context.Context, ids []uint) ([]*parcel.Package, error)

	// AssignCourier sets the courier as owner of every listed package
	// in a single batch update.
	AssignCourier(ctx context.Context, ids []uint, courierID uint) error

	// Update applies a patch to the package matching id alone and
	// returns the updated aggregate. Returns errs.ErrObjectNotFound
	// when no row matched.
	Update(ctx context.Context, id uint, patch PackagePatch) (*parcel.Package, error)

	// UpdateOwned applies a patch to the package matching both id and
	// owning courier in one statement. A package that exists but is
	// owned by someone else is indistinguishable from a missing one:
	// both yield errs.ErrObjectNotFound.
	UpdateOwned(ctx context.Context, id, courierID uint, patch PackagePatch) (*parcel.Package, error)

	// Delete removes the package by id.
	// Returns errs.ErrObjectNotFound when zero rows were affected.
	Delete(ctx context.Context, id uint) error
}
