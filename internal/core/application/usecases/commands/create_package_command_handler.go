package commands

import (
	"context"

	"dispatch/internal/core/domain/model/parcel"
)

// CreatePackageCommandHandler registers new packages. The aggregate is
// built through its constructor so domain invariants hold even if the
// command layer is bypassed.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

// NewCreatePackageCommandHandler creates a handler for package registration.
func NewCreatePackageCommandHandler(uowFactory PackageUoWFactory) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the package and returns it with its generated id and
// tracking code. The new package has no courier.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) (*parcel.Package, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := parcel.NewPackage(
		command.ClientName(),
		command.Quantity(),
		command.Weight(),
		command.Address(),
		command.Status(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.PackageRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
