package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanxpert/lanxpert-cli/internal/client/models"
)

func TestChatSend(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/chats/c1/messages", `{"id": "m1", "chat_id": "c1", "content": "hola"}`)
	svc := NewChatService(newTestAPI(t, fake))

	m, err := svc.Send(context.Background(), "c1", "hola")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, "hola", fake.last().Body["content"])
}

func TestChatStartRandomQueued(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/chats/random", `{
		"id": "c2",
		"type": "random_queue",
		"participants": [{"user": {"id": "u1"}}]
	}`)
	svc := NewChatService(newTestAPI(t, fake))

	c, err := svc.StartRandom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ChatTypeRandomQueue, c.Type)
	assert.True(t, c.WaitingForPartner())
}

func TestChatStartDirect(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/chats/direct", `{"id": "c3", "type": "direct"}`)
	svc := NewChatService(newTestAPI(t, fake))

	c, err := svc.StartDirect(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, "c3", c.ID)
	assert.Equal(t, "u2", fake.last().Body["user_id"])
}

func TestChatModeration(t *testing.T) {
	fake := newFakeServer()
	svc := NewChatService(newTestAPI(t, fake))
	ctx := context.Background()

	require.NoError(t, svc.Block(ctx, "u2"))
	assert.Equal(t, "POST", fake.last().Method)
	assert.Equal(t, "/chats/block", fake.last().Path)
	assert.Equal(t, "u2", fake.last().Body["user_id"])

	require.NoError(t, svc.Report(ctx, "u2", "spam"))
	assert.Equal(t, "/chats/report", fake.last().Path)
	assert.Equal(t, "u2", fake.last().Body["user_id"])
	assert.Equal(t, "spam", fake.last().Body["reason"])

	require.NoError(t, svc.Delete(ctx, "c1"))
	assert.Equal(t, "DELETE", fake.last().Method)
	assert.Equal(t, "/chats/c1", fake.last().Path)
}
