package middleware

import (
	"net/http"
	"strings"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo context key carrying the verified identity.
const identityContextKey = "identity"

// AuthMiddleware verifies identity-provider session tokens and exposes the
// verified identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and stores the identity on the
// request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		identity, err := m.tokenSvc.VerifySessionToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// RequireEducator rejects requests whose token does not carry the educator
// role. It must be used AFTER the Authenticate middleware; the use case
// layer re-checks the stored role.
func (m *AuthMiddleware) RequireEducator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
		}

		if identity.Role != entity.RoleEducator {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require educator role"})
		}

		return next(c)
	}
}

// GetIdentity returns the verified identity set by Authenticate.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*service.Identity)

	return identity, ok
}

// GetUserID returns the verified user ID, or empty when unauthenticated.
func GetUserID(c echo.Context) string {
	identity, ok := GetIdentity(c)
	if !ok {
		return ""
	}

	return identity.UserID
}
