package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// FeatureService covers the community features shown on the dashboard and
// the saved-items screen.
type FeatureService interface {
	DailySentence(ctx context.Context) (*models.DailySentence, error)
	WeeklyChampion(ctx context.Context) (*models.WeeklyChampion, error)
	SavedItems(ctx context.Context) ([]models.SavedItem, error)
	Unsave(ctx context.Context, item models.SavedItem) error
}

type featureService struct {
	api *api.Client
}

func NewFeatureService(client *api.Client) FeatureService {
	return &featureService{api: client}
}

func (s *featureService) DailySentence(ctx context.Context) (*models.DailySentence, error) {
	var d models.DailySentence
	if err := s.api.Get(ctx, "/features/daily-sentence", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *featureService) WeeklyChampion(ctx context.Context) (*models.WeeklyChampion, error) {
	var c models.WeeklyChampion
	if err := s.api.Get(ctx, "/features/weekly-champion", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *featureService) SavedItems(ctx context.Context) ([]models.SavedItem, error) {
	var items []models.SavedItem
	if err := s.api.Get(ctx, "/features/saved", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Unsave toggles the bookmark off. The save endpoint is a toggle, so
// calling it on a saved item removes it.
func (s *featureService) Unsave(ctx context.Context, item models.SavedItem) error {
	return s.api.Post(ctx, "/features/save/"+item.ContentType+"/"+item.ContentID, nil, nil)
}
