package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationList(t *testing.T) {
	fake := newFakeServer()
	fake.respond("/notifications", `[{"id": "n1", "is_read": false}, {"id": "n2", "is_read": true}]`)
	svc := NewNotificationService(newTestAPI(t, fake))

	ns, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.False(t, ns[0].IsRead)
}

func TestNotificationMarkRead(t *testing.T) {
	fake := newFakeServer()
	svc := NewNotificationService(newTestAPI(t, fake))
	ctx := context.Background()

	require.NoError(t, svc.MarkRead(ctx, "n1"))
	assert.Equal(t, "PUT", fake.last().Method)
	assert.Equal(t, "/notifications/n1/read", fake.last().Path)

	require.NoError(t, svc.MarkAllRead(ctx))
	assert.Equal(t, "POST", fake.last().Method)
	assert.Equal(t, "/notifications/read-all", fake.last().Path)
}
