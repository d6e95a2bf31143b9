package commands

import (
	"context"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
)

// UpdateUserCommandHandler applies administrative account edits. A set
// password is hashed here before it reaches the repository.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for account edits.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit and returns the updated user, or the
// repository's not-found error when no row matched.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, command UpdateUserCommand) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	patch := ports.UserPatch{
		Email:  command.Email(),
		Role:   command.Role(),
		Active: command.Active(),
	}

	if command.Password() != nil {
		hash, err := user.HashPassword(*command.Password())
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.UserRepository().Update(ctx, command.UserID(), patch)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
