package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitrade/internal/domain/entity"
	"unitrade/pkg/errors"
)

func TestSendMessageRequiresReceiver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addAccount(t, "u1", "alice")

	_, err := env.message.Send(ctx, "u1", "nobody", "hi", entity.MessageChat)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageDefaultsToChatKind(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addAccount(t, "u1", "alice")
	env.addAccount(t, "u2", "bob")

	msg, err := env.message.Send(ctx, "u1", "u2", "is the lamp still available?", "")
	require.NoError(t, err)
	assert.Equal(t, entity.MessageChat, msg.Kind)
	assert.False(t, msg.Read)
}

func TestConversationsGroupsByCounterpart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addAccount(t, "u1", "alice")
	env.addAccount(t, "u2", "bob")
	env.addAccount(t, "u3", "carol")

	_, err := env.message.Send(ctx, "u2", "u1", "first", entity.MessageChat)
	require.NoError(t, err)
	_, err = env.message.Send(ctx, "u2", "u1", "second", entity.MessageChat)
	require.NoError(t, err)
	_, err = env.message.Send(ctx, "u1", "u3", "outbound", entity.MessageChat)
	require.NoError(t, err)

	summaries, err := env.message.Conversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byOther := map[string]*ConversationSummary{}
	for _, s := range summaries {
		byOther[s.WithAccountID] = s
	}
	require.Contains(t, byOther, "u2")
	require.Contains(t, byOther, "u3")
	assert.Equal(t, 2, byOther["u2"].UnreadCount)
	assert.Equal(t, "second", byOther["u2"].LastMessage.Content)
	// Own outbound messages never count as unread.
	assert.Equal(t, 0, byOther["u3"].UnreadCount)
}

func TestMarkReadFlipsOnlyInboundUnread(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addAccount(t, "u1", "alice")
	env.addAccount(t, "u2", "bob")

	_, err := env.message.Send(ctx, "u2", "u1", "one", entity.MessageChat)
	require.NoError(t, err)
	_, err = env.message.Send(ctx, "u2", "u1", "two", entity.MessageChat)
	require.NoError(t, err)
	_, err = env.message.Send(ctx, "u1", "u2", "reply", entity.MessageChat)
	require.NoError(t, err)

	flipped, err := env.message.MarkRead(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, flipped)

	// Idempotent: nothing left to flip.
	flipped, err = env.message.MarkRead(ctx, "u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, flipped)

	summaries, err := env.message.Conversations(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].UnreadCount)
}
