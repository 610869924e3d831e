package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// memTokenStore is an in-memory api.TokenStore.
type memTokenStore struct {
	tok *oauth2.Token
}

func (m *memTokenStore) LoadToken(context.Context) (*oauth2.Token, error) { return m.tok, nil }
func (m *memTokenStore) SaveToken(_ context.Context, tok *oauth2.Token) error {
	m.tok = tok
	return nil
}
func (m *memTokenStore) ClearToken(context.Context) error {
	m.tok = nil
	return nil
}

func TestAuthRegister(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/users/", `{"id": "u1", "username": "maria", "email": "maria@example.com"}`)
	cache, _ := newTestWordCache()
	svc := NewAuthService(newTestAPI(t, fake), api.NewTokenManager("http://unused", &memTokenStore{}), cache)

	u, err := svc.Register(context.Background(), models.UserCreate{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "maria", fake.last().Body["username"])
	assert.Equal(t, "secret", fake.last().Body["password"])
}

func TestAuthEmailVerification(t *testing.T) {
	fake := newFakeServer()
	cache, _ := newTestWordCache()
	svc := NewAuthService(newTestAPI(t, fake), api.NewTokenManager("http://unused", &memTokenStore{}), cache)
	ctx := context.Background()

	require.NoError(t, svc.SendVerificationCode(ctx))
	assert.Equal(t, "POST", fake.last().Method)
	assert.Equal(t, "/users/verify-email/send", fake.last().Path)

	require.NoError(t, svc.VerifyEmail(ctx, "482913"))
	assert.Equal(t, "/users/verify-email/verify", fake.last().Path)
	assert.Equal(t, "482913", fake.last().Body["token"])
}

func TestAuthLogoutClearsTokenAndWordCache(t *testing.T) {
	fake := newFakeServer()
	store := &memTokenStore{tok: &oauth2.Token{AccessToken: "tok"}}
	tokens := api.NewTokenManager("http://unused", store)
	ctx := context.Background()

	restored, err := tokens.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored)

	cache, repo := newTestWordCache()
	require.NoError(t, cache.Save(ctx, &models.Word{ID: "w1", Word: "casa"}))

	svc := NewAuthService(newTestAPI(t, fake), tokens, cache)
	require.NoError(t, svc.Logout(ctx))

	assert.Nil(t, store.tok)
	assert.False(t, tokens.Authenticated())
	assert.Empty(t, repo.data)
}
