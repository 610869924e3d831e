// Package services contains the application services of the LanXpert client.
// Each service wraps a slice of the REST API behind a small interface so the
// CLI screens can be tested against fakes.
package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/localstore"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// AuthService covers account lifecycle operations.
//
// Contract:
//   - Register: create the account server-side; the caller still logs in.
//   - Login: run the password grant and persist the token locally.
//   - Logout: drop the token and every per-account local cache.
//   - SendVerificationCode / VerifyEmail: the email confirmation handshake.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, reg models.UserCreate) (*models.User, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	SendVerificationCode(ctx context.Context) error
	VerifyEmail(ctx context.Context, token string) error
	Authenticated() bool
}

type authService struct {
	api    *api.Client
	tokens *api.TokenManager
	words  *localstore.WordCache
}

// NewAuthService binds the auth flows to the API client, the token manager
// and the local word cache (cleared on logout so accounts do not leak state
// into each other).
func NewAuthService(client *api.Client, tokens *api.TokenManager, words *localstore.WordCache) AuthService {
	return &authService{api: client, tokens: tokens, words: words}
}

func (a *authService) Register(ctx context.Context, reg models.UserCreate) (*models.User, error) {
	var u models.User
	if err := a.api.Post(ctx, "/users/", reg, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *authService) Login(ctx context.Context, username, password string) error {
	return a.tokens.Login(ctx, username, password)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.words.Clear(ctx); err != nil {
		return err
	}
	return a.tokens.Clear(ctx)
}

func (a *authService) SendVerificationCode(ctx context.Context) error {
	return a.api.Post(ctx, "/users/verify-email/send", nil, nil)
}

func (a *authService) VerifyEmail(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return a.api.Post(ctx, "/users/verify-email/verify", body, nil)
}

func (a *authService) Authenticated() bool {
	return a.tokens.Authenticated()
}
