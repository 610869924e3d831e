package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanxpert/lanxpert-cli/internal/client/config"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
	"github.com/lanxpert/lanxpert-cli/internal/client/session"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// fakeAuth is a scriptable services.AuthService.
type fakeAuth struct {
	authenticated bool
	loginErr      error
	loggedOut     bool
}

func (f *fakeAuth) Register(context.Context, models.UserCreate) (*models.User, error) {
	return &models.User{ID: "u-new"}, nil
}
func (f *fakeAuth) Login(context.Context, string, string) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.authenticated = true
	return nil
}
func (f *fakeAuth) Logout(context.Context) error {
	f.authenticated = false
	f.loggedOut = true
	return nil
}
func (f *fakeAuth) SendVerificationCode(context.Context) error { return nil }
func (f *fakeAuth) VerifyEmail(context.Context, string) error  { return nil }
func (f *fakeAuth) Authenticated() bool                        { return f.authenticated }

// fakeChat is a scriptable services.ChatService.
type fakeChat struct {
	chats    []models.Chat
	messages []models.Message
	sendErr  error
	sent     []string
	blocked  []string
	reported []string
}

func (f *fakeChat) List(context.Context) ([]models.Chat, error) { return f.chats, nil }
func (f *fakeChat) Messages(context.Context, string) ([]models.Message, error) {
	return f.messages, nil
}
func (f *fakeChat) Send(_ context.Context, chatID, content string) (*models.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	m := models.Message{ID: "m-new", ChatID: chatID, SenderID: "u1", Content: content}
	f.messages = append(f.messages, m)
	f.sent = append(f.sent, content)
	return &m, nil
}
func (f *fakeChat) StartRandom(context.Context) (*models.Chat, error) {
	return &models.Chat{ID: "c-rand", Type: models.ChatTypeRandomQueue}, nil
}
func (f *fakeChat) StartDirect(context.Context, string) (*models.Chat, error) {
	return &models.Chat{ID: "c-direct", Type: models.ChatTypeDirect}, nil
}
func (f *fakeChat) Block(_ context.Context, userID string) error {
	f.blocked = append(f.blocked, userID)
	return nil
}
func (f *fakeChat) Report(_ context.Context, userID, _ string) error {
	f.reported = append(f.reported, userID)
	return nil
}
func (f *fakeChat) Delete(context.Context, string) error { return nil }

// fakeVocabulary is a scriptable services.VocabularyService.
type fakeVocabulary struct {
	word      *models.Word
	randomErr error
}

func (f *fakeVocabulary) RandomWord(context.Context) (*models.Word, error) {
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	return f.word, nil
}
func (f *fakeVocabulary) CurrentWord(ctx context.Context) (*models.Word, error) {
	return f.RandomWord(ctx)
}
func (f *fakeVocabulary) LearnedToday(context.Context) ([]models.Word, error) { return nil, nil }
func (f *fakeVocabulary) List(context.Context) ([]models.Word, error)         { return nil, nil }
func (f *fakeVocabulary) Create(_ context.Context, wc models.WordCreate) (*models.Word, error) {
	return &models.Word{ID: "w-new", Word: wc.Word, Meaning: wc.Meaning}, nil
}
func (f *fakeVocabulary) Update(context.Context, string, models.WordUpdate) (*models.Word, error) {
	return nil, nil
}
func (f *fakeVocabulary) Delete(context.Context, string) error { return nil }

// fakeNotifications is a scriptable services.NotificationService.
type fakeNotifications struct {
	notes []models.Notification
}

func (f *fakeNotifications) List(context.Context) ([]models.Notification, error) {
	return f.notes, nil
}
func (f *fakeNotifications) MarkRead(context.Context, string) error { return nil }
func (f *fakeNotifications) MarkAllRead(context.Context) error      { return nil }

// fakeStats returns fixed dashboard numbers.
type fakeStats struct{}

func (fakeStats) Overview(context.Context) (*models.Overview, error) {
	return &models.Overview{Level: "B1", XP: 120, CurrentStreak: 3, TotalVocabulary: 40}, nil
}
func (fakeStats) DailyGoals(context.Context) (*models.DailyGoals, error) {
	return &models.DailyGoals{Words: models.GoalProgress{Current: 2, Target: 5}}, nil
}
func (fakeStats) Activity(context.Context) ([]models.ActivityItem, error) { return nil, nil }

// fakeFeatures returns empty community features.
type fakeFeatures struct{}

func (fakeFeatures) DailySentence(context.Context) (*models.DailySentence, error) {
	return &models.DailySentence{}, nil
}
func (fakeFeatures) WeeklyChampion(context.Context) (*models.WeeklyChampion, error) {
	return &models.WeeklyChampion{}, nil
}
func (fakeFeatures) SavedItems(context.Context) ([]models.SavedItem, error) { return nil, nil }
func (fakeFeatures) Unsave(context.Context, models.SavedItem) error         { return nil }

type appFixture struct {
	app   *App
	out   *bytes.Buffer
	auth  *fakeAuth
	chat  *fakeChat
	vocab *fakeVocabulary
}

// newTestApp builds an App over fakes with scripted stdin. user == nil makes
// an anonymous session.
func newTestApp(t *testing.T, user *models.User, input string) *appFixture {
	t.Helper()

	auth := &fakeAuth{authenticated: user != nil}
	chat := &fakeChat{}
	vocab := &fakeVocabulary{word: &models.Word{ID: "w1", Word: "casa", Meaning: "house", Level: "A1", LanguageID: "lang-es"}}
	notes := &fakeNotifications{}

	svc := &services.Services{
		Auth:          auth,
		Vocabulary:    vocab,
		Chat:          chat,
		Notifications: notes,
		Questions:     services.NewQuestionService(nil),
		Stats:         fakeStats{},
		Features:      fakeFeatures{},
	}

	sess := session.NewStore(func(context.Context) (*models.User, error) {
		if user == nil {
			return nil, nil
		}
		return user, nil
	}, nil)
	if user != nil {
		_, err := sess.Refresh(context.Background())
		require.NoError(t, err)
	}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	out := &bytes.Buffer{}
	app := NewApp(cfg, svc, sess, nil, logging.Nop{}, WithInput(strings.NewReader(input)), WithOutput(out))
	return &appFixture{app: app, out: out, auth: auth, chat: chat, vocab: vocab}
}

func memberUser() *models.User {
	return &models.User{
		ID:               "u1",
		Username:         "maria",
		Email:            "maria@example.com",
		NativeLanguageID: "lang-es",
		TargetLanguageID: "lang-en",
		EmailVerified:    true,
		IsActive:         true,
	}
}
