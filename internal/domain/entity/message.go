package entity

import "time"

type MessageKind string

const (
	MessageChat   MessageKind = "chat"
	MessageSystem MessageKind = "system"
)

type Message struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"sender_id"`
	ReceiverID string      `json:"receiver_id"`
	Content    string      `json:"content"`
	Kind       MessageKind `json:"kind"`
	Read       bool        `json:"is_read"`
	CreatedAt  time.Time   `json:"created_at"`
}
