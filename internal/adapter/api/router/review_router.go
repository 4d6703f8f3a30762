package router

import (
	"unitrade/internal/adapter/api/handler"
	"unitrade/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.ListReviews)

	authed := e.Group("/v1/reviews")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", reviewHandler.CreateReview)
}
