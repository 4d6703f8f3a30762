package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"unitrade/internal/auth"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := auth.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", claims.AccountID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// ValidateToken exposes token verification for transports that cannot send
// an Authorization header, e.g. the websocket query parameter.
func (m *AuthMiddleware) ValidateToken(token string) (string, error) {
	claims, err := auth.ValidateToken(token, m.jwtSecret)
	if err != nil {
		return "", err
	}
	return claims.AccountID, nil
}
