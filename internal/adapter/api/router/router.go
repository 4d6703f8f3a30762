package router

import (
	"unitrade/internal/adapter/api/middleware"
	"unitrade/internal/infrastructure/ws"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, hub *ws.Hub) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, authMiddleware, hub)
	SetupHealthRouter(e)
}
