package commands

import (
	"context"
)

// DeleteUserCommandHandler removes accounts by id.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for account deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the user, returning the repository's not-found error
// when zero rows were affected.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, command DeleteUserCommand) error {
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

	if err := uow.UserRepository().Delete(ctx, command.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
