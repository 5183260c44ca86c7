package ws

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock_verifier.go -package=wsmock github.com/emberhollow/realmd/internal/handlers/ws TokenVerifier

// TokenVerifier authenticates a handshake token and resolves the user
// identity it carries.
type TokenVerifier interface {
	// Verify returns the user id the token was issued for.
	// Returns errors.Unauthenticated for missing, malformed, expired,
	// or otherwise invalid tokens.
	Verify(token string) (string, error)
}

// sessionClaims is the claims shape issued at login.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// JWTVerifier verifies HMAC-signed session tokens.
type JWTVerifier struct {
	secret []byte
	clock  clock.Clock
}

// NewJWTVerifier creates a verifier for HS256 tokens signed with secret.
func NewJWTVerifier(secret []byte) (*JWTVerifier, error) {
	return NewJWTVerifierWithClock(secret, clock.New())
}

// NewJWTVerifierWithClock creates a verifier with an injected time
// source so expiry can be tested deterministically.
func NewJWTVerifierWithClock(secret []byte, clk clock.Clock) (*JWTVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.InvalidArgument("token secret is required")
	}
	if clk == nil {
		return nil, errors.InvalidArgument("clock is required")
	}
	return &JWTVerifier{secret: secret, clock: clk}, nil
}

// Verify checks the signature and expiry and extracts the user id.
func (v *JWTVerifier) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.Unauthenticated("token is required")
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.clock.Now),
	)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnauthenticated, "invalid token")
	}

	if claims.UserID == "" {
		return "", errors.Unauthenticated("token carries no user id")
	}
	return claims.UserID, nil
}
