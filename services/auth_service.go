package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/lucaferrario/tournament-manager/utils"
)

const organizerTokenTTL = 24 * time.Hour

type AuthService interface {
	// Login checks the organizer password and issues a signed token.
	Login(ctx context.Context, password string) (string, error)
}

type authService struct {
	passwordHash string
	jwtSecret    []byte
}

func NewAuthService(passwordHash string, jwtSecret []byte) AuthService {
	return &authService{passwordHash: passwordHash, jwtSecret: jwtSecret}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "organizer",
		"iat":  now.Unix(),
		"exp":  now.Add(organizerTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign organizer token: %w", err)
	}
	return signed, nil
}
