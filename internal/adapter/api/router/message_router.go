package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)
	messages.GET("", messageHandler.ListMessages)
	messages.GET("/conversations", messageHandler.ListConversations)
	messages.GET("/:otherId", messageHandler.GetConversation)
	messages.POST("", messageHandler.SendMessage)
	messages.POST("/:otherId/read", messageHandler.MarkRead)
}
