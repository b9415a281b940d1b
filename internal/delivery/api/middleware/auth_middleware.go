package middleware

import (
	"net/http"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware is the access gate in front of every authenticated route.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Identify resolves the caller from the Authorization header. It never consults the store.
func (m *AuthMiddleware) Identify(req *http.Request) (*entity.Identity, error) {
	token := service.ExtractBearerToken(req.Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingToken)
	}

	claims, err := m.tokenSvc.Verify(token)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return &entity.Identity{UserID: userID, Email: claims.Email}, nil
}

// Authenticate rejects the request with 401 unless Identify succeeds.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.Identify(c.Request())
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}
