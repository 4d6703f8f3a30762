package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	apimiddleware "unitrade/internal/adapter/api/middleware"
	"unitrade/internal/infrastructure/ws"
	"unitrade/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin checks are delegated to the CORS layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub            *ws.Hub
	authMiddleware *apimiddleware.AuthMiddleware
}

func NewWebSocketHandler(hub *ws.Hub, authMiddleware *apimiddleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		authMiddleware: authMiddleware,
	}
}

// Connect upgrades the request and registers the account for message
// pushes. Browsers cannot set headers on websocket requests, so the session
// token arrives as a query parameter.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token is required")
	}

	accountID, err := h.authMiddleware.ValidateToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Websocket upgrade failed for %s: %v", accountID, err)
		return err
	}

	client := &ws.Client{
		AccountID: accountID,
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)
	return nil
}
