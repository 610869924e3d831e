package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// NotificationService backs the notification badge and list. List is driven
// by the slow background poller.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	api *api.Client
}

func NewNotificationService(client *api.Client) NotificationService {
	return &notificationService{api: client}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	var ns []models.Notification
	if err := s.api.Get(ctx, "/notifications", nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.api.Put(ctx, "/notifications/"+id+"/read", nil, nil)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.api.Post(ctx, "/notifications/read-all", nil, nil)
}
