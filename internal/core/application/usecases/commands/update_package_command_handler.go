package commands

import (
	"context"

	"dispatch/internal/core/domain/model/parcel"
)

// UpdatePackageCommandHandler applies an administrative update to a
// package matched by id alone.
type UpdatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewUpdatePackageCommandHandler creates a handler for admin package updates.
func NewUpdatePackageCommandHandler(uowFactory PackageUoWFactory) UpdatePackageCommandHandler {
	return UpdatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update and returns the updated package, or the
// repository's not-found error when no row matched.
func (h UpdatePackageCommandHandler) Handle(ctx context.Context, command UpdatePackageCommand) (*parcel.Package, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.PackageRepository().Update(ctx, command.PackageID(), command.Patch())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
