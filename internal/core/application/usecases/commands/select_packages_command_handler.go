package commands

import (
	"context"
	"errors"
)

var (
	// ErrSomePackagesDoNotExist is returned when the resolved package
	// count does not match the requested count. No assignment happens
	// in that case.
	ErrSomePackagesDoNotExist = errors.New("some packages do not exist")
)

// SelectPackagesCommandHandler assigns a batch of packages to a
// courier. The existence pre-check and the batch update run inside one
// transaction, so a mismatch leaves the store untouched.
//
// Concurrent selects racing over the same package are not serialized
// beyond the store's own update semantics; the last write wins.
type SelectPackagesCommandHandler struct {
	uowFactory UoWFactory
}

// NewSelectPackagesCommandHandler creates a handler for batch package selection.
func NewSelectPackagesCommandHandler(uowFactory UoWFactory) SelectPackagesCommandHandler {
	return SelectPackagesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the selection. Fails with the user repository's
// not-found error when the courier is unknown, and with
// ErrSomePackagesDoNotExist when any requested id has no row. On
// success every listed package is owned by the courier.
func (h SelectPackagesCommandHandler) Handle(ctx context.Context, command SelectPackagesCommand) error {
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

	if _, err := uow.UserRepository().Get(ctx, command.UserID()); err != nil {
		return err
	}

	packageRepo := uow.PackageRepository()

	found, err := packageRepo.GetAllByIDs(ctx, command.PackageIDs())
	if err != nil {
		return err
	}
	if len(found) != len(command.PackageIDs()) {
		return ErrSomePackagesDoNotExist
	}

	if err = packageRepo.AssignCourier(ctx, command.PackageIDs(), command.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
