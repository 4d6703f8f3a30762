package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
	"unitrade/internal/infrastructure/ws"
	"unitrade/pkg/logger"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	accountRepo repository.AccountRepository
	hub         *ws.Hub
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	accountRepo repository.AccountRepository,
	hub *ws.Hub,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		accountRepo: accountRepo,
		hub:         hub,
	}
}

func (uc *MessageUseCase) Send(ctx context.Context, senderID, receiverID, content string, kind entity.MessageKind) (*entity.Message, error) {
	if _, err := uc.accountRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}
	if kind == "" {
		kind = entity.MessageChat
	}

	message := &entity.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Kind:       kind,
		CreatedAt:  time.Now(),
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	uc.push(receiverID, message)
	return message, nil
}

func (uc *MessageUseCase) ListForAccount(ctx context.Context, accountID string) ([]*entity.Message, error) {
	return uc.messageRepo.ListByAccount(ctx, accountID)
}

func (uc *MessageUseCase) Conversation(ctx context.Context, accountID, otherID string) ([]*entity.Message, error) {
	return uc.messageRepo.ListConversation(ctx, accountID, otherID)
}

func (uc *MessageUseCase) MarkRead(ctx context.Context, accountID, otherID string) (int, error) {
	return uc.messageRepo.MarkRead(ctx, accountID, otherID)
}

// ConversationSummary is one row in the inbox view.
type ConversationSummary struct {
	WithAccountID string          `json:"with_account_id"`
	LastMessage   *entity.Message `json:"last_message"`
	UnreadCount   int             `json:"unread_count"`
}

// Conversations groups the account's messages per counterpart, newest
// conversation first.
func (uc *MessageUseCase) Conversations(ctx context.Context, accountID string) ([]*ConversationSummary, error) {
	messages, err := uc.messageRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	byOther := make(map[string]*ConversationSummary)
	var order []string
	for _, m := range messages {
		other := m.SenderID
		if other == accountID {
			other = m.ReceiverID
		}
		summary, ok := byOther[other]
		if !ok {
			summary = &ConversationSummary{WithAccountID: other}
			byOther[other] = summary
			order = append(order, other)
		}
		if summary.LastMessage == nil || m.CreatedAt.After(summary.LastMessage.CreatedAt) {
			summary.LastMessage = m
		}
		if m.ReceiverID == accountID && !m.Read {
			summary.UnreadCount++
		}
	}

	out := make([]*ConversationSummary, 0, len(byOther))
	for _, other := range order {
		out = append(out, byOther[other])
	}
	return out, nil
}

func (uc *MessageUseCase) push(receiverID string, message *entity.Message) {
	if uc.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "message",
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to encode message push: %v", err)
		return
	}
	uc.hub.SendToAccount(receiverID, payload)
}
