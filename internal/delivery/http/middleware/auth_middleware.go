package middleware

import (
	"errors"
	"strings"

	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/pkg/response"
	"hirehub/internal/repository"

	"github.com/gofiber/fiber/v3"
)

const CtxUserKey = "auth_user"

type AuthMiddleware struct {
	jwt   jwt.Service
	users repository.UserRepository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

// Middleware authenticates a request: bearer token, signature/expiry,
// live identity lookup, and a cross-check that the token's role still
// matches the stored role (a stale token after a role change is rejected
// outright). The resolved user is attached to the request context.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
		}

		claims, err := m.jwt.VerifyToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Token expired", err)
			}
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Invalid token", err)
		}

		usr, err := m.users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Invalid token", nil)
			}
			return NewAppError(fiber.StatusInternalServerError, response.CodeInternal, response.MessageInternalServerError, err)
		}

		if usr.Role != claims.Role {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Token role mismatch", nil)
		}

		c.Locals(CtxUserKey, usr)

		return c.Next()
	}
}

// RequireRoles gates a route on role membership. Runs after Middleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, ok := UserFromContext(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Unauthorized", nil)
		}

		for _, role := range roles {
			if usr.Role == role {
				return c.Next()
			}
		}

		return NewAppError(fiber.StatusForbidden, response.CodeForbidden,
			"Role "+usr.Role+" is not authorized to access this route", nil)
	}
}

func UserFromContext(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(CtxUserKey).(user.User)
	return usr, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
