package services

import (
	"context"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

// ChatService is the messaging surface. List and Messages are the fetch
// functions the pollers drive; the optimistic send flow lives with the chat
// screen, which owns the visible message list.
type ChatService interface {
	List(ctx context.Context) ([]models.Chat, error)
	Messages(ctx context.Context, chatID string) ([]models.Message, error)
	Send(ctx context.Context, chatID, content string) (*models.Message, error)
	// StartRandom joins the random-partner queue. The returned chat is of
	// type random_queue until a partner arrives.
	StartRandom(ctx context.Context) (*models.Chat, error)
	StartDirect(ctx context.Context, userID string) (*models.Chat, error)
	// Block and Report act on a user, not a conversation; the caller
	// resolves the partner from the chat's participant list.
	Block(ctx context.Context, userID string) error
	Report(ctx context.Context, userID, reason string) error
	Delete(ctx context.Context, chatID string) error
}

type chatService struct {
	api *api.Client
}

func NewChatService(client *api.Client) ChatService {
	return &chatService{api: client}
}

func (s *chatService) List(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := s.api.Get(ctx, "/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (s *chatService) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	var msgs []models.Message
	if err := s.api.Get(ctx, "/chats/"+chatID+"/messages", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *chatService) Send(ctx context.Context, chatID, content string) (*models.Message, error) {
	body := map[string]string{"content": content}
	var m models.Message
	if err := s.api.Post(ctx, "/chats/"+chatID+"/messages", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *chatService) StartRandom(ctx context.Context) (*models.Chat, error) {
	var c models.Chat
	if err := s.api.Post(ctx, "/chats/random", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *chatService) StartDirect(ctx context.Context, userID string) (*models.Chat, error) {
	body := map[string]string{"user_id": userID}
	var c models.Chat
	if err := s.api.Post(ctx, "/chats/direct", body, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *chatService) Block(ctx context.Context, userID string) error {
	body := map[string]string{"user_id": userID}
	return s.api.Post(ctx, "/chats/block", body, nil)
}

func (s *chatService) Report(ctx context.Context, userID, reason string) error {
	body := map[string]string{"user_id": userID, "reason": reason}
	return s.api.Post(ctx, "/chats/report", body, nil)
}

func (s *chatService) Delete(ctx context.Context, chatID string) error {
	return s.api.Delete(ctx, "/chats/"+chatID)
}
