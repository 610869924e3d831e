package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// StatsService feeds the dashboard's numbers.
type StatsService interface {
	Overview(ctx context.Context) (*models.Overview, error)
	DailyGoals(ctx context.Context) (*models.DailyGoals, error)
	Activity(ctx context.Context) ([]models.ActivityItem, error)
}

type statsService struct {
	api *api.Client
}

func NewStatsService(client *api.Client) StatsService {
	return &statsService{api: client}
}

func (s *statsService) Overview(ctx context.Context) (*models.Overview, error) {
	var o models.Overview
	if err := s.api.Get(ctx, "/stats/overview", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *statsService) DailyGoals(ctx context.Context) (*models.DailyGoals, error) {
	var g models.DailyGoals
	if err := s.api.Get(ctx, "/stats/daily", nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *statsService) Activity(ctx context.Context) ([]models.ActivityItem, error) {
	var items []models.ActivityItem
	if err := s.api.Get(ctx, "/stats/activity", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
