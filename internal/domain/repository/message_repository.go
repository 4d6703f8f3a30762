package repository

import (
	"context"

	"unitrade/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByAccount returns every message the account sent or received, in
	// insertion order.
	ListByAccount(ctx context.Context, accountID string) ([]*entity.Message, error)
	ListConversation(ctx context.Context, accountID, otherID string) ([]*entity.Message, error)

	// MarkRead flips the read flag on all messages received by receiverID
	// from senderID and returns how many were flipped.
	MarkRead(ctx context.Context, receiverID, senderID string) (int, error)
}
