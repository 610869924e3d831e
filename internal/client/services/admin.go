package services

import (
	"context"
	"net/url"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// AdminService is the management surface behind the admin gate. The generic
// resource browser has its own engine in the crud package; this service
// carries the curated endpoints.
type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListUsers(ctx context.Context, search string) ([]models.User, error)
	// ToggleActive flips the account flag and returns the new value.
	ToggleActive(ctx context.Context, userID string) (bool, error)
	PromoteRole(ctx context.Context, userID, role string) error
	RemoveRole(ctx context.Context, userID, role string) error
	ResetLimits(ctx context.Context, userID string) error
	// BulkImportWords uploads a parsed word list in one request.
	BulkImportWords(ctx context.Context, words []models.WordCreate) (*models.BulkImportResult, error)
}

type adminService struct {
	api *api.Client
}

func NewAdminService(client *api.Client) AdminService {
	return &adminService{api: client}
}

func (s *adminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var st models.DashboardStats
	if err := s.api.Get(ctx, "/admin/dashboard-stats", nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *adminService) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var users []models.User
	if err := s.api.Get(ctx, "/admin/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *adminService) ToggleActive(ctx context.Context, userID string) (bool, error) {
	var res struct {
		Status   string `json:"status"`
		IsActive bool   `json:"is_active"`
	}
	if err := s.api.Put(ctx, "/admin/users/"+userID+"/toggle-active", nil, &res); err != nil {
		return false, err
	}
	return res.IsActive, nil
}

func (s *adminService) PromoteRole(ctx context.Context, userID, role string) error {
	// the role travels as a query parameter, not a body
	return s.api.Put(ctx, "/admin/users/"+userID+"/promote?role="+url.QueryEscape(role), nil, nil)
}

func (s *adminService) RemoveRole(ctx context.Context, userID, role string) error {
	return s.api.Delete(ctx, "/admin/users/"+userID+"/roles/"+url.PathEscape(role))
}

func (s *adminService) ResetLimits(ctx context.Context, userID string) error {
	return s.api.Post(ctx, "/admin/users/"+userID+"/reset-limits", nil, nil)
}

func (s *adminService) BulkImportWords(ctx context.Context, words []models.WordCreate) (*models.BulkImportResult, error) {
	// the endpoint takes the bare array, not a wrapper object
	var res models.BulkImportResult
	if err := s.api.Post(ctx, "/admin/words/bulk", words, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
