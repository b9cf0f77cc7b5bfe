package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtKey []byte

// SetJWTSecret installs the signing key once at startup, after configuration
// is loaded. Reading the env here at init would run before godotenv does.
func SetJWTSecret(secret string) {
	jwtKey = []byte(secret)
}

// Claims carries the identity the auth collaborator issued. This service only
// validates tokens; login, signup and logout live with the collaborator.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func CreateToken(userID, name, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}
	return claims, nil
}
