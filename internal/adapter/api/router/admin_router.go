package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/accounts", adminHandler.ListAccounts)
	admin.POST("/accounts/:id/ban", adminHandler.SetAccountBanned)
	admin.GET("/listings", adminHandler.ListListings)
	admin.POST("/listings/:id/status", adminHandler.SetListingStatus)
}
