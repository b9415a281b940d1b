package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/config"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// DefaultTokenTTL is how long an issued token stays valid when not configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC key, fixed at construction.
	ttl    time.Duration    // Time-to-live for issued tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// Option customizes a jwtService.
type Option func(*jwtService)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService builds an HS256 token service signing with secret.
func NewJWTService(secret string, ttl time.Duration, opts ...Option) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewJWTServiceFromConfig is the fx provider. It warns when the development secret is in use.
func NewJWTServiceFromConfig(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	if cfg.SecretKey.Fallback {
		logger.Warn("Token secret not configured, signing with the development fallback secret",
			slog.String("env", cfg.Env.Env),
		)
	}

	var ttl time.Duration
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return NewJWTService(cfg.SecretKey.Token, ttl)
}

// Issue creates a signed token binding the user ID and email.
func (s *jwtService) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("empty token")
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token payload lacks userId or email")
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
