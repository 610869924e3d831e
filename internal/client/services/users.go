package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// UserService reads and updates the caller's own profile.
type UserService interface {
	Me(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, upd models.UserUpdate) (*models.User, error)
}

type userService struct {
	api *api.Client
}

func NewUserService(client *api.Client) UserService {
	return &userService{api: client}
}

func (s *userService) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.api.Get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe writes the non-nil fields of upd and returns the refreshed
// profile. Used by onboarding and the settings screen.
func (s *userService) UpdateMe(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := s.api.Put(ctx, "/users/me", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
