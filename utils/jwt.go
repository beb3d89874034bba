package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/twtrd/twtrd/config"
)

const tokenIssuer = "twtrd"

// AuthClaims is the identity payload carried by twtrd access tokens.
type AuthClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed, time-bound token for the given user identity.
func GenerateToken(userID uint, username string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Get().JWTSecret))
}

// ParseToken validates a token and returns its claims. Only HS256 tokens
// issued by this service, carrying an expiry, are accepted.
func ParseToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) {
			return []byte(config.Get().JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
