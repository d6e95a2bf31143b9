package commands

import (
	"context"
)

// DeletePackageCommandHandler removes packages by id. The caller gets a
// confirmation, never the deleted entity.
type DeletePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewDeletePackageCommandHandler creates a handler for package deletion.
func NewDeletePackageCommandHandler(uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the package, returning the repository's not-found
// error when zero rows were affected.
func (h DeletePackageCommandHandler) Handle(ctx context.Context, command DeletePackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PackageRepository().Delete(ctx, command.PackageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
