package commands

import (
	"context"

	"dispatch/internal/core/domain/model/parcel"
)

// EditPackageCommandHandler applies an ownership-scoped update to a
// single package. The ownership filter runs inside the UPDATE statement
// itself rather than as a separate read, so there is no window between
// check and write.
type EditPackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewEditPackageCommandHandler creates a handler for courier package edits.
func NewEditPackageCommandHandler(uowFactory PackageUoWFactory) EditPackageCommandHandler {
	return EditPackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit and returns the updated package. A package
// that does not exist or is not owned by the requesting courier yields
// the repository's not-found error.
func (h EditPackageCommandHandler) Handle(ctx context.Context, command EditPackageCommand) (*parcel.Package, error) {
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

	updated, err := uow.PackageRepository().UpdateOwned(ctx, command.PackageID(), command.UserID(), command.Patch())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
