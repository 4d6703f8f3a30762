package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/related", listingHandler.GetRelated)
	listings.GET("/:id", listingHandler.GetListing)
	listings.POST("/:id/view", listingHandler.IncrementView)

	authed := e.Group("/v1/listings")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", listingHandler.CreateListing)
	authed.POST("/:id/purchase", listingHandler.Purchase)
	authed.POST("/:id/confirm-receipt", listingHandler.ConfirmReceipt)
}
