package services

import (
	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/localstore"
)

// Services bundles every application service for wiring into the CLI.
type Services struct {
	Auth          AuthService
	Users         UserService
	Vocabulary    VocabularyService
	Questions     QuestionService
	Articles      ArticleService
	Chat          ChatService
	Notifications NotificationService
	Stats         StatsService
	Features      FeatureService
	Admin         AdminService
}

// New builds the full service set over one API client.
func New(client *api.Client, tokens *api.TokenManager, words *localstore.WordCache) *Services {
	return &Services{
		Auth:          NewAuthService(client, tokens, words),
		Users:         NewUserService(client),
		Vocabulary:    NewVocabularyService(client, words),
		Questions:     NewQuestionService(client),
		Articles:      NewArticleService(client),
		Chat:          NewChatService(client),
		Notifications: NewNotificationService(client),
		Stats:         NewStatsService(client),
		Features:      NewFeatureService(client),
		Admin:         NewAdminService(client),
	}
}
