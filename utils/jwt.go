package utils

import (
	"time"

	"backend/config"

	"github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(userID uint, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	return token.SignedString([]byte(config.App.JWTSecret))
}
