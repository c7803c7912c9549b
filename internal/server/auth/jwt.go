// Package auth issues and verifies the signed session tokens that gate the
// API. Tokens are self-contained: verification needs only the signing secret
// and the token bytes, there is no server-side session table.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dberestov/taskdeck/internal/common"
)

// Claims carries the verified session identity alongside the registered
// issued-at and expiry claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// TokenService signs HS256 tokens with a secret injected at construction.
// Rotating the secret invalidates every outstanding token; sessions do not
// survive a rotation.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue signs a token for the given identity, valid for the configured
// window from now.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates the token. Expired tokens yield
// common.ErrTokenExpired; a bad signature, wrong algorithm, or garbage input
// yields common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
