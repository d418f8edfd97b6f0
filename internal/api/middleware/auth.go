package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/restaurant-platform/restaurant-api/internal/core/ports"
	"github.com/restaurant-platform/restaurant-api/internal/core/service"
)

// Auth validates the bearer token and injects its claims into the request
// context. A token is accepted only when the signature verifies, it has not
// expired, and its jti is not in the revocation registry.
//
// Context keys set on success: user_id (uint), username (string),
// jti (string), token_exp (time.Time).
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := service.Claims{}
			tkn, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid || claims.ExpiresAt == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.ID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "revocation check failed")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
			}

			userID, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			c.Set("user_id", uint(userID))
			c.Set("username", claims.Username)
			c.Set("jti", claims.ID)
			c.Set("token_exp", claims.ExpiresAt.Time)

			return next(c)
		}
	}
}
