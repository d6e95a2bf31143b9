package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenIssuer signs a bearer token for an authenticated user.
// Implemented by the token package's Signer.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}

// AuthenticateUserCommandResponse carries the signed token and the
// authenticated user back to the transport layer.
type AuthenticateUserCommandResponse struct {
	Token string
	User  *user.User
}

// AuthenticateUserCommandHandler verifies a credential against the
// stored hash and issues a session token.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     TokenIssuer
}

// NewAuthenticateUserCommandHandler creates a handler for login attempts.
func NewAuthenticateUserCommandHandler(uowFactory UserUoWFactory, issuer TokenIssuer) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle resolves the account by email and verifies the credential.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (h AuthenticateUserCommandHandler) Handle(ctx context.Context, command AuthenticateUserCommand) (AuthenticateUserCommandResponse, error) {
	if err := command.Validate(); err != nil {
		return AuthenticateUserCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthenticateUserCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, command.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticateUserCommandResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserCommandResponse{}, err
	}

	if !account.CheckPassword(command.Password()) {
		return AuthenticateUserCommandResponse{}, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(account.ID(), account.Role().String())
	if err != nil {
		return AuthenticateUserCommandResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthenticateUserCommandResponse{}, err
	}

	return AuthenticateUserCommandResponse{
		Token: token,
		User:  account,
	}, nil
}
