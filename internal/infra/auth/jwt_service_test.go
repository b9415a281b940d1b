package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	domainerrors "taskhub/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())

	userID := uuid.NewString()
	token, err := svc.Issue(userID, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService("", time.Hour)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_VerifyRejects(t *testing.T) {
	svc, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	valid, err := svc.Issue(uuid.NewString(), "alice@example.com")
	require.NoError(t, err)
	parts := strings.Split(valid, ".")

	other, err := NewJWTService("another_secret_entirely", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(uuid.NewString(), "alice@example.com")
	require.NoError(t, err)

	tamperedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"userId":"someone-else","email":"alice@example.com","exp":9999999999}`))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "tampered payload", token: parts[0] + "." + tamperedPayload + "." + parts[2]},
		{name: "tampered signature", token: parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]},
		{name: "wrong secret", token: foreign},
		{name: "two segments", token: parts[0] + "." + parts[1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		})
	}
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt

	svc, err := NewJWTService(testSecret, 7*24*time.Hour, WithClock(func() time.Time { return clock }))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.NewString(), "alice@example.com")
	require.NoError(t, err)

	clock = issuedAt.Add(7*24*time.Hour - time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock = issuedAt.Add(7*24*time.Hour + time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"userId": uuid.NewString(),
		"email":  "alice@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.Verify(hs512)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_RequiresPayloadFields(t *testing.T) {
	svc, err := NewJWTService(testSecret, time.Hour)
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return s
	}
	exp := time.Now().Add(time.Hour).Unix()

	_, err = svc.Verify(sign(jwt.MapClaims{"email": "a@b.co", "exp": exp}))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Verify(sign(jwt.MapClaims{"userId": uuid.NewString(), "exp": exp}))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = svc.Verify(sign(jwt.MapClaims{"userId": uuid.NewString(), "email": "a@b.co"}))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
