package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	me := auth.Group("/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", authHandler.Me)
}
