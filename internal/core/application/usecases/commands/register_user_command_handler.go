package commands

import (
	"context"

	"dispatch/internal/core/domain/model/user"
)

// RegisterUserCommandHandler creates new accounts. Email uniqueness is
// enforced by the store's constraint; a collision surfaces as
// ports.ErrEmailAlreadyTaken.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle hashes the credential, builds the aggregate, and persists it.
// Returns the created user carrying its generated id.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := user.HashPassword(command.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(command.Email(), hash, command.Role(), command.Active())
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

	created, err := uow.UserRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
