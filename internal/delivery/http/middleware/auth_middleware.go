package middleware

import (
	deliverycontext "nutrifit/internal/delivery/context"
	domainerrors "nutrifit/internal/domain/errors"
	"nutrifit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HeaderAuthToken is the custom header the clients send the session
// token in. The established frontend contract uses it instead of the
// standard Authorization header.
const HeaderAuthToken = "auth-token"

// Context keys the handlers read the session identity from.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserName = "userName"
)

// AuthMiddleware validates the session token carried by the auth-token
// header.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a token with 401 and requests
// with a bad token with 400, matching the established client contract.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.Request().Header.Get(HeaderAuthToken)
		if tokenString == "" {
			return domainerrors.ErrMissingToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)
			if log != nil {
				log.Warn("Rejected session token", "error", err.Error())
			}

			return domainerrors.ErrInvalidToken
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.UserName)

		return next(c)
	}
}
