// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"fleetcheck/internal/delivery/http/response"
	"fleetcheck/internal/domain/entity"
	"fleetcheck/internal/domain/service"
	"fleetcheck/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyAccount is the echo.Context key under which the authenticated account is stored.
const keyAccount = "account"

// AuthMiddleware authenticates requests via bearer session tokens and exposes
// role checks for route groups.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer token and loads the account it belongs to.
// The account is stored on the echo context for handlers and role checks.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must carry a Bearer token")
		}

		account, err := m.authUsecase.CurrentIdentity(c.Request().Context(), tokenString)
		if err != nil {
			// Expired, malformed, wrong-purpose and orphaned tokens all end
			// here; the error middleware maps the specific code.
			return err
		}

		SetAccount(c, account)

		return next(c)
	}
}

// RequireRole is a middleware factory restricting a route group to the given
// roles. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.RequireRole(GetAccount(c), allowed...); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// SetAccount stores the authenticated account on the echo context.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(keyAccount, account)
}

// GetAccount returns the authenticated account, or nil when the request did
// not pass Authenticate.
func GetAccount(c echo.Context) *entity.Account {
	account, _ := c.Get(keyAccount).(*entity.Account)

	return account
}
