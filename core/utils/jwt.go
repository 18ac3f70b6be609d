package utils

import (
	"fmt"
	"time"

	"dayboard/core/config"
	"dayboard/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenData is the verified content of a session token.
type TokenData struct {
	UserID uuid.UUID
	Email  string
}

// GenerateToken issues a signed session token for the user.
func GenerateToken(userID uuid.UUID, email string) (string, error) {
	cfg, err := config.GetSafe()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(cfg.JWT.TTLMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry of a session
// token and returns its subject.
func ValidateAndParseToken(tokenString string) (*TokenData, error) {
	cfg, err := config.GetSafe()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired or invalid", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "unreadable token claims", nil)
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token subject", err)
	}

	email, _ := claims["email"].(string)
	return &TokenData{UserID: userID, Email: email}, nil
}
