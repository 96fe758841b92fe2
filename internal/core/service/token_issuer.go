package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTIssuer signs HS256 access tokens. Claims carry the subject id and the
// role held at issuance time; a later role change does not alter tokens
// already in the wild, which is why protected routes revalidate the role
// against the store.
type JWTIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewJWTIssuer(secret string, tokenTTL time.Duration) *JWTIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &JWTIssuer{secret: secret, tokenTTL: tokenTTL}
}

func (i *JWTIssuer) Sign(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(i.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}
