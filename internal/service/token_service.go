package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/qtcyy/practice-system/config"
)

// TokenClaims is the identity a verified bearer token carries.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

type TokenService interface {
	CreateToken(userID uuid.UUID, username, role string) (string, error)
	ParseToken(tokenString string) (*TokenClaims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.Jwt.Secret),
		ttl:    time.Duration(cfg.Jwt.TTLHours) * time.Hour,
	}
}

func (s *tokenService) CreateToken(userID uuid.UUID, username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":         userID.String(),
		"unique_name": username,
		"role":        role,
		"iat":         now.Unix(),
		"exp":         now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	uidStr, _ := claims["uid"].(string)
	userID, err := uuid.Parse(uidStr)
	if err != nil {
		return nil, fmt.Errorf("invalid uid claim: %w", err)
	}
	username, _ := claims["unique_name"].(string)
	role, _ := claims["role"].(string)

	return &TokenClaims{UserID: userID, Username: username, Role: role}, nil
}
