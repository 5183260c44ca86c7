package ws_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/handlers/ws"
	"github.com/emberhollow/realmd/internal/pkg/clock"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, "user-42", time.Now().Add(time.Hour))

	userID, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestJWTVerifier_RejectsExpiredToken(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, "user-42", time.Now().Add(-time.Hour))

	_, err = v.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestJWTVerifier_RejectsWrongSecret(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, []byte("other-secret"), "user-42", time.Now().Add(time.Hour))

	_, err = v.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestJWTVerifier_RejectsUnsignedToken(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	claims := jwt.MapClaims{"userId": "user-42"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestJWTVerifier_RejectsMissingUserID(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = v.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestJWTVerifier_RejectsEmptyToken(t *testing.T) {
	v, err := ws.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	_, err = v.Verify("   ")
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestJWTVerifier_ExpiryAgainstInjectedClock(t *testing.T) {
	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(issued)

	v, err := ws.NewJWTVerifierWithClock(testSecret, clk)
	require.NoError(t, err)

	token := signToken(t, testSecret, "user-42", issued.Add(time.Hour))

	_, err = v.Verify(token)
	require.NoError(t, err)

	clk.Advance(2 * time.Hour)
	_, err = v.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthenticated(err))
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := ws.NewJWTVerifier(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
