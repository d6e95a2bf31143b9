package http

import (
	"net/http"
	"strings"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is where the auth middleware stores the verified
// claims on the echo context.
const claimsContextKey = "claims"

// TokenVerifier validates a bearer token string and returns its claims.
// Implemented by the token package's Signer.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth extracts and verifies the Bearer token. Requests without a
// valid token are rejected with 401 before any handler runs.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Missing or malformed token"})
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid token"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route on the role claim. Runs after Auth; a
// request whose token carries a different role is rejected with 403.
func RequireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Missing or malformed token"})
			}
			if claims.Role != role.String() {
				return c.JSON(http.StatusForbidden, MessageResponse{Message: "Forbidden"})
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims stored by Auth, or nil
// when the route is not gated.
func ClaimsFromContext(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsContextKey).(*token.Claims)
	return claims
}
