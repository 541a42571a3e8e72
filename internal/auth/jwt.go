package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mathwiz/internal/errors"
)

// Claims carries the authenticated user's email as the JWT subject.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given HS256 secret and TTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed access token for the given user email.
func (t *TokenIssuer) Issue(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}
	return signed, nil
}

// Validate parses a token string and returns the subject email.
func (t *TokenIssuer) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.Unauthorized("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", errors.Unauthorized("could not validate credentials")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.Unauthorized("could not validate credentials")
	}
	return claims.Subject, nil
}
