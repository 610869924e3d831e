package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/repositories/metadata"
	"golang.org/x/oauth2"
)

const tokenKey = "auth_token"

// TokenVault persists the oauth2 token in the metadata table. It implements
// api.TokenStore.
type TokenVault struct {
	repo metadata.Repository
}

func NewTokenVault(repo metadata.Repository) *TokenVault {
	return &TokenVault{repo: repo}
}

func (v *TokenVault) LoadToken(ctx context.Context) (*oauth2.Token, error) {
	raw, err := v.repo.Get(ctx, tokenKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("decoding stored token: %w", err)
	}
	return &tok, nil
}

func (v *TokenVault) SaveToken(ctx context.Context, tok *oauth2.Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	return v.repo.Set(ctx, tokenKey, raw)
}

func (v *TokenVault) ClearToken(ctx context.Context) error {
	return v.repo.Delete(ctx, tokenKey)
}
