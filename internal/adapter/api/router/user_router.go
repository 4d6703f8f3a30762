package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	accounts := e.Group("/v1/accounts")
	accounts.GET("/:id", userHandler.GetAccount)
	accounts.GET("/:id/profile", userHandler.GetProfileData)

	me := e.Group("/v1/accounts/me")
	me.Use(authMiddleware.Authenticate)
	me.PATCH("", userHandler.UpdateProfile)
	me.POST("/wishlist", userHandler.ToggleWishlist)
	me.POST("/follow", userHandler.ToggleFollow)
	me.POST("/withdraw", userHandler.Withdraw)
}
