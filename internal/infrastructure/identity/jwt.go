// Package identity verifies bearer tokens and yields the caller's email.
package identity

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sharedwatchlist/watchlist-api/internal/core/ports"
)

// JWTVerifier accepts HS256 tokens issued by the auth service.
type JWTVerifier struct {
	secret []byte
}

var _ ports.IdentityVerifier = (*JWTVerifier)(nil)

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", ports.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		email, _ = claims["sub"].(string)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ports.ErrInvalidToken
	}
	return email, nil
}
