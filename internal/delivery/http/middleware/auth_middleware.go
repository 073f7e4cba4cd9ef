package middleware

import (
	"slices"
	"strings"

	"laundrypro/internal/delivery/http/response"
	"laundrypro/internal/domain/entity"
	"laundrypro/internal/domain/service"
	"laundrypro/internal/usecase"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo.Context key carrying the authenticated actor.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the acting user
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if !role.Valid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries an unknown role")
		}

		c.Set(actorContextKey, usecase.Actor{UserID: claims.UserID, Role: role})

		return next(c)
	}
}

// RequireRole restricts a route to the given roles. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(actorContextKey).(usecase.Actor)
			if !ok {
				return response.Forbidden(c, "MISSING_ACTOR", "Permission denied: authentication information missing")
			}

			if !slices.Contains(roles, actor.Role) {
				return response.Forbidden(c, "INSUFFICIENT_ROLE", "Permission denied for this role")
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor stored by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(usecase.Actor)

	return actor, ok
}
