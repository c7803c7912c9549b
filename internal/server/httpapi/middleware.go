package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dberestov/taskdeck/internal/server/auth"
)

const claimsContextKey = "authClaims"

// requireAuth gates a route behind a bearer token. No token at all means
// 401; a token that fails verification for any reason, expiry included,
// means 403. The gate performs no I/O beyond token verification.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid or expired token"})
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// bearerToken strips the "Bearer " scheme from the header value; any other
// shape is treated as no token.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// claimsFrom returns the identity attached by requireAuth. Only valid on
// gated routes.
func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}
