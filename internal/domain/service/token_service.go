package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix is the case-sensitive scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "

// Claims is the payload bound into every issued token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for the given user that expires after TTL.
	Issue(userID, email string) (string, error)

	// Verify checks signature, structure and expiry, then returns the decoded claims.
	// Every failure matches domain errors.ErrInvalidToken.
	Verify(token string) (*Claims, error)

	// TTL returns how long an issued token stays valid.
	TTL() time.Duration
}

// ExtractBearerToken returns whatever follows "Bearer " in an Authorization header value.
// It returns "" when the header is empty or uses another scheme. Whitespace after the
// prefix is kept, so "Bearer  x" yields " x".
func ExtractBearerToken(header string) string {
	token, ok := strings.CutPrefix(header, BearerPrefix)
	if !ok {
		return ""
	}

	return token
}
