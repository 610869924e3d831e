package services

import (
	"context"
	"errors"
	"strings"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/localstore"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// VocabularyService is the word-practice surface: the random daily word plus
// the user's own word list.
type VocabularyService interface {
	// RandomWord fetches the next practice word and caches it locally so a
	// restart resumes on the same word. A free-plan user past the daily
	// limit gets an error satisfying IsDailyLimit.
	RandomWord(ctx context.Context) (*models.Word, error)
	// CurrentWord returns the locally cached word, or fetches one when the
	// cache is empty.
	CurrentWord(ctx context.Context) (*models.Word, error)
	LearnedToday(ctx context.Context) ([]models.Word, error)
	List(ctx context.Context) ([]models.Word, error)
	Create(ctx context.Context, w models.WordCreate) (*models.Word, error)
	Update(ctx context.Context, id string, upd models.WordUpdate) (*models.Word, error)
	Delete(ctx context.Context, id string) error
}

type vocabularyService struct {
	api   *api.Client
	cache *localstore.WordCache
}

func NewVocabularyService(client *api.Client, cache *localstore.WordCache) VocabularyService {
	return &vocabularyService{api: client, cache: cache}
}

// IsDailyLimit reports whether err is the free-plan daily word limit. The
// server signals it as a 403 whose detail names the limit.
func IsDailyLimit(err error) bool {
	return errors.Is(err, api.ErrForbidden) && strings.Contains(api.Detail(err), "limit")
}

func (s *vocabularyService) RandomWord(ctx context.Context) (*models.Word, error) {
	var w models.Word
	if err := s.api.Get(ctx, "/words/random", nil, &w); err != nil {
		return nil, err
	}
	// cache failures must not hide a successfully fetched word
	_ = s.cache.Save(ctx, &w)
	return &w, nil
}

func (s *vocabularyService) CurrentWord(ctx context.Context) (*models.Word, error) {
	if w, err := s.cache.Load(ctx); err == nil && w != nil {
		return w, nil
	}
	return s.RandomWord(ctx)
}

func (s *vocabularyService) LearnedToday(ctx context.Context) ([]models.Word, error) {
	var words []models.Word
	if err := s.api.Get(ctx, "/words/learned/today", nil, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *vocabularyService) List(ctx context.Context) ([]models.Word, error) {
	var words []models.Word
	if err := s.api.Get(ctx, "/words", nil, &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (s *vocabularyService) Create(ctx context.Context, wc models.WordCreate) (*models.Word, error) {
	var w models.Word
	if err := s.api.Post(ctx, "/words", wc, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *vocabularyService) Update(ctx context.Context, id string, upd models.WordUpdate) (*models.Word, error) {
	var w models.Word
	if err := s.api.Put(ctx, "/words/"+id, upd, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *vocabularyService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/words/"+id)
}
