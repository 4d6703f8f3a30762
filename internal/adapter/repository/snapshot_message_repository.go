package repository

import (
	"context"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
)

type snapshotMessageRepository struct {
	store *SnapshotStore
}

func NewSnapshotMessageRepository(store *SnapshotStore) repository.MessageRepository {
	return &snapshotMessageRepository{store: store}
}

func (r *snapshotMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return r.store.withWrite(ctx, func(d *storeData) error {
		d.Messages = append(d.Messages, cloneMessage(message))
		return nil
	})
}

func (r *snapshotMessageRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Message, error) {
	var out []*entity.Message
	r.store.withRead(func(d *storeData) error {
		for _, m := range d.Messages {
			if m.SenderID == accountID || m.ReceiverID == accountID {
				out = append(out, cloneMessage(m))
			}
		}
		return nil
	})
	return out, nil
}

func (r *snapshotMessageRepository) ListConversation(ctx context.Context, accountID, otherID string) ([]*entity.Message, error) {
	var out []*entity.Message
	r.store.withRead(func(d *storeData) error {
		for _, m := range d.Messages {
			if (m.SenderID == accountID && m.ReceiverID == otherID) ||
				(m.SenderID == otherID && m.ReceiverID == accountID) {
				out = append(out, cloneMessage(m))
			}
		}
		return nil
	})
	return out, nil
}

func (r *snapshotMessageRepository) MarkRead(ctx context.Context, receiverID, senderID string) (int, error) {
	flipped := 0
	err := r.store.withWrite(ctx, func(d *storeData) error {
		for _, m := range d.Messages {
			if m.ReceiverID == receiverID && m.SenderID == senderID && !m.Read {
				m.Read = true
				flipped++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return flipped, nil
}
