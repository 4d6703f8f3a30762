package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"unitrade/internal/domain/entity"
	"unitrade/internal/domain/repository"
)

type AdminMiddleware struct {
	accountRepo repository.AccountRepository
}

func NewAdminMiddleware(accountRepo repository.AccountRepository) *AdminMiddleware {
	return &AdminMiddleware{
		accountRepo: accountRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		account, err := m.accountRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if account.Role != entity.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
