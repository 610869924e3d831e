package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/repositories/metadata"
)

const currentWordKey = "current_word"

// WordCache keeps the last word served by /words/random so the practice
// screen can restore it across restarts without burning a daily-limit slot.
type WordCache struct {
	repo metadata.Repository
}

func NewWordCache(repo metadata.Repository) *WordCache {
	return &WordCache{repo: repo}
}

// Load returns the cached word, or nil when none is cached.
func (c *WordCache) Load(ctx context.Context) (*models.Word, error) {
	raw, err := c.repo.Get(ctx, currentWordKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var w models.Word
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decoding cached word: %w", err)
	}
	return &w, nil
}

func (c *WordCache) Save(ctx context.Context, w *models.Word) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding word: %w", err)
	}
	return c.repo.Set(ctx, currentWordKey, raw)
}

func (c *WordCache) Clear(ctx context.Context) error {
	return c.repo.Delete(ctx, currentWordKey)
}
