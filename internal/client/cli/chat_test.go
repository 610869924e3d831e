package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

func TestSendMessageReconcilesWithServer(t *testing.T) {
	f := newTestApp(t, memberUser(), "")
	history := []models.Message{{ID: "m1", ChatID: "c1", SenderID: "u2", Content: "hi"}}
	f.chat.messages = history
	f.app.setMessages(history)

	f.app.sendMessage(context.Background(), "c1", "hola")

	msgs := f.app.currentMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "hola", msgs[1].Content)
	// the provisional id was replaced by the server's copy
	assert.Equal(t, "m-new", msgs[1].ID)
	assert.False(t, strings.HasPrefix(msgs[1].ID, "pending-"))
	assert.Equal(t, []string{"hola"}, f.chat.sent)
}

func TestSendMessageRollsBackAndRestoresInput(t *testing.T) {
	f := newTestApp(t, memberUser(), "")
	history := []models.Message{{ID: "m1", ChatID: "c1", SenderID: "u2", Content: "hi"}}
	f.chat.messages = history
	f.chat.sendErr = &api.Error{Status: 503, Detail: "Service unavailable"}
	f.app.setMessages(history)

	f.app.sendMessage(context.Background(), "c1", "hola")

	msgs := f.app.currentMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "m1", msgs[0].ID)
	// the typed text is echoed so the user can retry without retyping
	assert.Contains(t, f.out.String(), "Your message was: hola")
}

func TestBlockTargetsChatPartner(t *testing.T) {
	f := newTestApp(t, memberUser(), "/block\n")
	chat := &models.Chat{ID: "c1", Type: models.ChatTypeRandom, Participants: []models.ChatParticipant{
		{User: models.User{ID: "u1", Username: "maria"}},
		{User: models.User{ID: "u2", Username: "leo"}},
	}}

	f.app.openChat(context.Background(), chat)

	// the block lands on the partner's user id, never the chat id
	assert.Equal(t, []string{"u2"}, f.chat.blocked)
	assert.Contains(t, f.out.String(), "User blocked.")
}

func TestReportTargetsChatPartner(t *testing.T) {
	f := newTestApp(t, memberUser(), "/report\nspam\n/back\n")
	chat := &models.Chat{ID: "c1", Type: models.ChatTypeRandom, Participants: []models.ChatParticipant{
		{User: models.User{ID: "u1", Username: "maria"}},
		{User: models.User{ID: "u2", Username: "leo"}},
	}}

	f.app.openChat(context.Background(), chat)

	assert.Equal(t, []string{"u2"}, f.chat.reported)
}

func TestBlockWithoutPartnerDoesNothing(t *testing.T) {
	f := newTestApp(t, memberUser(), "/block\n/back\n")
	chat := &models.Chat{ID: "c2", Type: models.ChatTypeRandomQueue, Participants: []models.ChatParticipant{
		{User: models.User{ID: "u1", Username: "maria"}},
	}}

	f.app.openChat(context.Background(), chat)

	assert.Empty(t, f.chat.blocked)
	assert.Contains(t, f.out.String(), "No partner in this conversation yet.")
}

func TestUnreadCountFeedsPromptBadge(t *testing.T) {
	f := newTestApp(t, memberUser(), "")
	f.app.mu.Lock()
	f.app.notifications = []models.Notification{
		{ID: "n1", IsRead: false},
		{ID: "n2", IsRead: true},
		{ID: "n3", IsRead: false},
	}
	f.app.mu.Unlock()

	assert.Equal(t, 2, f.app.unreadCount())
	assert.Contains(t, f.app.status(), "[2]")
}
