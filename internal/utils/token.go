package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saxenaaman628/redis-quiz-service/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

func GenerateJWTToken(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWTToken validates signature and expiry and returns the token's user.
func ParseJWTToken(raw, secret string) (*models.User, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	user := &models.User{}
	user.ID, _ = claims["id"].(string)
	user.Username, _ = claims["username"].(string)
	user.Role, _ = claims["role"].(string)
	if user.Username == "" {
		return nil, ErrInvalidToken
	}

	return user, nil
}
