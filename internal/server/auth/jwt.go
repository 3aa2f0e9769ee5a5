// Package auth issues and parses the signed tokens attached to account
// responses.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jabbaspizza/accounts/internal/common"
)

// TokenValidityDuration is the fixed lifetime of an issued token. Tokens are
// not revocable and there is no refresh mechanism.
const TokenValidityDuration = 48 * time.Hour

// Claims carries the identity fields embedded in an issued token.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GenerateToken signs a token (HS256) carrying the given identity claims,
// expiring TokenValidityDuration from now.
func GenerateToken(email, firstName, lastName string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidityDuration)),
		},
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiration of tokenString and
// returns its claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrorInternal
	}

	return claims, nil
}
