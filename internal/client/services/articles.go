package services

import (
	"context"
	"net/url"
	stdsync "sync"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
)

// ArticleTab selects which slice of the article feed to list.
type ArticleTab int

const (
	ArticlesAll ArticleTab = iota
	ArticlesMine
)

// ArticleService is the community articles surface.
type ArticleService interface {
	List(ctx context.Context, tab ArticleTab, self *models.User) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, ac models.ArticleCreate) (*models.Article, error)
	Update(ctx context.Context, id string, ac models.ArticleCreate) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike flips the like flag and adjusts the counter on a in place,
	// optimistically, reconciling with the server's confirmed state.
	ToggleLike(ctx context.Context, a *models.Article) error
	// ToggleSave flips the bookmark flag on a in place, optimistically.
	ToggleSave(ctx context.Context, a *models.Article) error
}

// likeState is the pair the like toggle mutates atomically.
type likeState struct {
	Liked bool
	Count int
}

type articleService struct {
	api *api.Client

	mu    stdsync.Mutex
	likes map[string]*sync.Field[likeState]
	saves map[string]*sync.Field[bool]
}

func NewArticleService(client *api.Client) ArticleService {
	return &articleService{
		api:   client,
		likes: make(map[string]*sync.Field[likeState]),
		saves: make(map[string]*sync.Field[bool]),
	}
}

func (s *articleService) List(ctx context.Context, tab ArticleTab, self *models.User) ([]models.Article, error) {
	q := url.Values{}
	if tab == ArticlesMine {
		q.Set("user_id", self.ID)
	}
	var articles []models.Article
	if err := s.api.Get(ctx, "/articles", q, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	var a models.Article
	if err := s.api.Get(ctx, "/articles/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *articleService) Create(ctx context.Context, ac models.ArticleCreate) (*models.Article, error) {
	var a models.Article
	if err := s.api.Post(ctx, "/articles", ac, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *articleService) Update(ctx context.Context, id string, ac models.ArticleCreate) (*models.Article, error) {
	var a models.Article
	if err := s.api.Put(ctx, "/articles/"+id, ac, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/articles/"+id)
}

func (s *articleService) ToggleLike(ctx context.Context, a *models.Article) error {
	field := s.likeField(a.ID)
	previous := likeState{Liked: a.IsLiked, Count: a.LikeCount}
	optimistic := likeState{Liked: !a.IsLiked, Count: a.LikeCount + 1}
	if a.IsLiked {
		optimistic.Count = a.LikeCount - 1
	}
	return field.Mutate(ctx, previous, optimistic,
		func(v likeState) {
			a.IsLiked = v.Liked
			a.LikeCount = v.Count
		},
		func(ctx context.Context) (likeState, error) {
			var res models.LikeResult
			if err := s.api.Post(ctx, "/articles/"+a.ID+"/like", nil, &res); err != nil {
				return likeState{}, err
			}
			return likeState{Liked: res.IsLiked, Count: res.LikeCount}, nil
		})
}

func (s *articleService) ToggleSave(ctx context.Context, a *models.Article) error {
	field := s.saveField(a.ID)
	previous := a.IsSaved
	return field.Mutate(ctx, previous, !previous,
		func(v bool) { a.IsSaved = v },
		func(ctx context.Context) (bool, error) {
			var res models.SaveResult
			if err := s.api.Post(ctx, "/features/save/"+models.SavedTypeArticle+"/"+a.ID, nil, &res); err != nil {
				return false, err
			}
			return res.IsSaved, nil
		})
}

func (s *articleService) likeField(id string) *sync.Field[likeState] {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.likes[id]
	if !ok {
		f = &sync.Field[likeState]{}
		s.likes[id] = f
	}
	return f
}

func (s *articleService) saveField(id string) *sync.Field[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.saves[id]
	if !ok {
		f = &sync.Field[bool]{}
		s.saves[id] = f
	}
	return f
}
