package ws

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"unitrade/pkg/logger"
)

// Client represents one connected account.
type Client struct {
	AccountID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Hub tracks active connections and routes pushed payloads to them. One
// connection per account; a newer connection replaces the older one.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				if old, ok := h.clients[client.AccountID]; ok {
					close(old.Send)
				}
				h.clients[client.AccountID] = client
				h.mutex.Unlock()
				logger.Debug("Client registered: %s", client.AccountID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if current, ok := h.clients[client.AccountID]; ok && current == client {
					delete(h.clients, client.AccountID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("Client unregistered: %s", client.AccountID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToAccount pushes a payload to the account's connection when present.
// Delivery is best-effort; a full send buffer drops the payload. The lock is
// held through the send: Send channels are only closed under the write lock,
// so a concurrent replacement cannot close the channel mid-send.
func (h *Hub) SendToAccount(accountID string, payload []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	client, ok := h.clients[accountID]
	if !ok {
		return
	}
	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping push to %s: send buffer full", accountID)
	}
}

// ReadPump drains the connection until it closes, then unregisters.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Websocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued payloads to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
