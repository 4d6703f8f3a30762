package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"
	"unitrade/internal/infrastructure/ws"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, hub *ws.Hub) {
	wsHandler := handler.NewWebSocketHandler(hub, authMiddleware)

	e.GET("/v1/ws", wsHandler.Connect)
}
