package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	stdsync "sync"

	"github.com/lanxpert/lanxpert-cli/internal/client/config"
	"github.com/lanxpert/lanxpert-cli/internal/client/crud"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
	"github.com/lanxpert/lanxpert-cli/internal/client/session"
	"github.com/lanxpert/lanxpert-cli/internal/client/sync"
	"github.com/lanxpert/lanxpert-cli/internal/logging"
)

// App wires the screens, the services and the background pollers together.
type App struct {
	config  *config.Config
	svc     *services.Services
	session *session.Store
	browser *crud.Engine
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	chatListPoller     *sync.Poller
	messagePoller      *sync.Poller
	notificationPoller *sync.Poller

	// poller-written state, guarded because ticks land on scheduler
	// goroutines while the REPL reads on its own
	mu            stdsync.Mutex
	chats         []models.Chat
	messages      []models.Message
	notifications []models.Notification

	// messageField serializes optimistic sends against the open chat's
	// visible message list
	messageField sync.Field[[]models.Message]
}

type AppOption func(*App)

// WithInput replaces stdin, for scripted sessions in tests.
func WithInput(r io.Reader) AppOption {
	return func(a *App) { a.reader = bufio.NewReader(r) }
}

// WithOutput replaces stdout.
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

func NewApp(cfg *config.Config, svc *services.Services, sess *session.Store, browser *crud.Engine, log logging.Logger, opts ...AppOption) *App {
	a := &App{
		config:  cfg,
		svc:     svc,
		session: sess,
		browser: browser,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	for _, o := range opts {
		o(a)
	}

	a.chatListPoller = sync.NewPoller(cfg.ChatListPollInterval, func(ctx context.Context, _ string) error {
		chats, err := svc.Chat.List(ctx)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.chats = chats
		a.mu.Unlock()
		return nil
	}, sync.WithPollerLogger(log))

	a.messagePoller = sync.NewPoller(cfg.MessagePollInterval, func(ctx context.Context, chatID string) error {
		msgs, err := svc.Chat.Messages(ctx, chatID)
		if err != nil {
			return err
		}
		a.setMessages(msgs)
		return nil
	}, sync.WithPollerLogger(log))

	a.notificationPoller = sync.NewPoller(cfg.NotificationPollInterval, func(ctx context.Context, _ string) error {
		ns, err := svc.Notifications.List(ctx)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.notifications = ns
		a.mu.Unlock()
		return nil
	}, sync.WithPollerLogger(log))

	return a
}

// Run starts the REPL. It returns when the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.stopPollers()
	a.root(ctx)
}

func (a *App) stopPollers() {
	a.chatListPoller.Stop()
	a.messagePoller.Stop()
	a.notificationPoller.Stop()
}

func (a *App) loggedIn() bool {
	return a.session.Get() != nil
}

func (a *App) setMessages(msgs []models.Message) {
	a.mu.Lock()
	a.messages = msgs
	a.mu.Unlock()
}

func (a *App) currentMessages() []models.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]models.Message, len(a.messages))
	copy(msgs, a.messages)
	return msgs
}

func (a *App) currentChats() []models.Chat {
	a.mu.Lock()
	defer a.mu.Unlock()
	chats := make([]models.Chat, len(a.chats))
	copy(chats, a.chats)
	return chats
}

// unreadCount feeds the prompt's notification badge.
func (a *App) unreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, note := range a.notifications {
		if !note.IsRead {
			n++
		}
	}
	return n
}
