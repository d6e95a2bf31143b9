package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(userID uint, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func restoreAccount(t *testing.T, id uint, email, password string) *user.User {
	t.Helper()
	hash, err := user.HashPassword(password)
	require.NoError(t, err)
	account, err := user.RestoreUser(id, email, hash, user.RoleDelivery, true)
	require.NoError(t, err)
	return account
}

func TestAuthenticateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAuthenticateUserCommand("courier@dispatch.local", "s3cret")

	account := restoreAccount(t, 7, "courier@dispatch.local", "s3cret")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "courier@dispatch.local").Return(account, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	issuer := new(MockTokenIssuer)
	issuer.On("Issue", uint(7), "delivery").Return("signed-token", nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateUserCommandHandler(factory, issuer)
	resp, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, uint(7), resp.User.ID())
	repo.AssertExpectations(t)
	issuer.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAuthenticateUserCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAuthenticateUserCommand("ghost@dispatch.local", "s3cret")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "ghost@dispatch.local").
			Return(nil, errs.NewObjectNotFoundError("email", "ghost@dispatch.local")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	issuer := new(MockTokenIssuer)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateUserCommandHandler(factory, issuer)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateUserCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewAuthenticateUserCommand("courier@dispatch.local", "wrong")

	account := restoreAccount(t, 7, "courier@dispatch.local", "s3cret")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, "courier@dispatch.local").Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	issuer := new(MockTokenIssuer)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateUserCommandHandler(factory, issuer)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AuthenticateUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewAuthenticateUserCommandHandler(factory, new(MockTokenIssuer))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
