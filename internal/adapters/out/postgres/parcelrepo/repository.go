package parcelrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package and returns the aggregate carrying its generated id.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *parcel.Package) (*parcel.Package, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(created.ID(), created)
	return created, nil
}

// Get retrieves a package by id.
func (r *GormPackageRepository) Get(ctx context.Context, id uint) (*parcel.Package, error) {
	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packageId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves every package whose id appears in the list.
// Ids without a matching row are absent from the result.
func (r *GormPackageRepository) GetAllByIDs(ctx context.Context, ids []uint) ([]*parcel.Package, error) {
	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	packages := make([]*parcel.Package, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	return packages, nil
}

// AssignCourier sets the courier as owner of every listed package in a
// single batch UPDATE.
func (r *GormPackageRepository) AssignCourier(ctx context.Context, ids []uint, courierID uint) error {
	result := r.db.WithContext(ctx).
		Model(&PackageDTO{}).
		Where("id IN ?", ids).
		Update("courier_id", courierID)

	return result.Error
}

// Update applies a patch to the package matching id alone and returns
// the updated aggregate.
func (r *GormPackageRepository) Update(ctx context.Context, id uint, patch ports.PackagePatch) (*parcel.Package, error) {
	return r.applyPatch(ctx, patch, "id = ?", id)
}

// UpdateOwned applies a patch scoped by both package id and owning
// courier in one statement. Non-existence and non-ownership are
// indistinguishable: both return errs.ErrObjectNotFound.
func (r *GormPackageRepository) UpdateOwned(ctx context.Context, id, courierID uint, patch ports.PackagePatch) (*parcel.Package, error) {
	return r.applyPatch(ctx, patch, "id = ? AND courier_id = ?", id, courierID)
}

// Delete removes the package by id.
func (r *GormPackageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&PackageDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("packageId", id)
	}

	return nil
}

// applyPatch runs a single UPDATE ... RETURNING constrained by the given
// condition and maps the returned row back to the domain.
func (r *GormPackageRepository) applyPatch(ctx context.Context, patch ports.PackagePatch, condition string, args ...any) (*parcel.Package, error) {
	if patch.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("patch")
	}

	var updated []PackageDTO
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where(condition, args...).
		Updates(patchToUpdates(patch))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, errs.NewObjectNotFoundError("packageId", args[0])
	}

	aggregate, err := toDomain(updated[0])
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// patchToUpdates converts a patch into the column map for GORM Updates.
func patchToUpdates(patch ports.PackagePatch) map[string]any {
	updates := make(map[string]any)
	if patch.ClientName != nil {
		updates["client_name"] = *patch.ClientName
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Weight != nil {
		updates["weight"] = *patch.Weight
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Status != nil {
		updates["status"] = patch.Status.String()
	}
	return updates
}
