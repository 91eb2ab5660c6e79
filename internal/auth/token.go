package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated username alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// IssueToken signs an HS256 bearer token for username, valid for ttl.
func IssueToken(username string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Username: username,
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry and returns the embedded
// username. Any failure (malformed, bad signature, expired) is returned as-is;
// callers treat them all as unauthorized.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.Username, nil
}
