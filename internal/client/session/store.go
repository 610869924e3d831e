// Package session holds the authenticated user, the only piece of mutable
// state shared between screens. Screens never mutate the user directly:
// they call Refresh and read again once it returns.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// Fetcher loads the current user from the server (GET /users/me).
type Fetcher func(ctx context.Context) (*models.User, error)

// Store is the explicit session container: populated on the first successful
// fetch, cleared on logout or 401.
type Store struct {
	mu    sync.RWMutex
	user  *models.User
	fetch Fetcher
	log   logging.Logger
}

func NewStore(fetch Fetcher, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	return &Store{fetch: fetch, log: log}
}

// Get returns the cached user, or nil when no session is populated.
func (s *Store) Get() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Refresh fetches the user from the server and replaces the cached value.
// A 401 clears the session before the error is returned.
func (s *Store) Refresh(ctx context.Context) (*models.User, error) {
	user, err := s.fetch(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.Invalidate()
		}
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.log.Debug(ctx, "session refreshed", "user_id", user.ID)
	return user, nil
}

// Ensure returns the cached user, refreshing first when the cache is empty.
func (s *Store) Ensure(ctx context.Context) (*models.User, error) {
	if u := s.Get(); u != nil {
		return u, nil
	}
	return s.Refresh(ctx)
}

// Invalidate drops the cached user.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}
