package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// TokenStore persists the bearer token between runs. The local sqlite
// metadata store implements it; tests use an in-memory map.
type TokenStore interface {
	LoadToken(ctx context.Context) (*oauth2.Token, error)
	SaveToken(ctx context.Context, tok *oauth2.Token) error
	ClearToken(ctx context.Context) error
}

// TokenManager owns the token lifecycle: the password grant against
// POST /token, transparent refresh via the oauth2 token source, and
// persistence of every newly minted token.
type TokenManager struct {
	conf  *oauth2.Config
	store TokenStore

	mu     sync.Mutex
	source oauth2.TokenSource
	last   *oauth2.Token
}

// NewTokenManager builds a manager for the given API base URL. The LanXpert
// token endpoint takes form-encoded credentials (OAuth2 password grant) and
// answers {access_token, token_type, refresh_token}.
func NewTokenManager(baseURL string, store TokenStore) *TokenManager {
	return &TokenManager{
		conf: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  baseURL + "/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		store: store,
	}
}

// Restore loads a previously persisted token, if any, and arms the refresh
// source with it. Returns false when no token is stored.
func (m *TokenManager) Restore(ctx context.Context) (bool, error) {
	tok, err := m.store.LoadToken(ctx)
	if err != nil {
		return false, fmt.Errorf("loading token: %w", err)
	}
	if tok == nil || tok.AccessToken == "" {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = tok
	m.source = m.conf.TokenSource(context.Background(), tok)
	return true, nil
}

// Login performs the password grant and persists the resulting token.
func (m *TokenManager) Login(ctx context.Context, username, password string) error {
	tok, err := m.conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return &Error{Status: rErr.Response.StatusCode, Detail: retrieveDetail(rErr)}
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	m.mu.Lock()
	m.last = tok
	m.source = m.conf.TokenSource(context.Background(), tok)
	m.mu.Unlock()

	if err := m.store.SaveToken(ctx, tok); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	return nil
}

// Token returns a valid token, refreshing through the token endpoint when
// the current one expired. A refreshed token is persisted before being
// returned. Returns ErrUnauthorized when no login has happened.
func (m *TokenManager) Token(ctx context.Context) (*oauth2.Token, error) {
	m.mu.Lock()
	source := m.source
	last := m.last
	m.mu.Unlock()

	if source == nil {
		return nil, ErrUnauthorized
	}

	tok, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if last == nil || tok.AccessToken != last.AccessToken {
		m.mu.Lock()
		m.last = tok
		m.mu.Unlock()
		if err := m.store.SaveToken(ctx, tok); err != nil {
			return nil, fmt.Errorf("persisting refreshed token: %w", err)
		}
	}
	return tok, nil
}

// Clear drops the in-memory token and wipes the persisted one. Used on
// logout and after a definitive 401.
func (m *TokenManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.source = nil
	m.last = nil
	m.mu.Unlock()
	return m.store.ClearToken(ctx)
}

// Authenticated reports whether a token is armed (it may still be rejected
// server-side; the gates treat that as a missing session).
func (m *TokenManager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source != nil
}

// ExpiresAt peeks at the access token's exp claim without verifying the
// signature (the client has no key and does not need one; the server is the
// authority). Zero time when the claim is absent or unparsable.
func (m *TokenManager) ExpiresAt() time.Time {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()
	if last == nil {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(last.AccessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func retrieveDetail(rErr *oauth2.RetrieveError) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rErr.Body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	if rErr.ErrorDescription != "" {
		return rErr.ErrorDescription
	}
	return http.StatusText(rErr.Response.StatusCode)
}
