package services

import (
	"fmt"
	"log"
	"time"

	"katalog/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and validates member bearer tokens.
type TokenService struct {
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewTokenService creates a new TokenService.
func NewTokenService(jwtSecret string, tokenTTL time.Duration) *TokenService {
	return &TokenService{
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// IssueToken signs a token identifying memberID.
func (s *TokenService) IssueToken(memberID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"member_id": memberID,
		"exp":       now.Add(s.tokenTTL).Unix(),
		"iat":       now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning the member it identifies.
func (s *TokenService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return 0, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, models.ErrInvalidToken
	}
	// JSON numbers decode as float64
	id, ok := claims["member_id"].(float64)
	if !ok || id <= 0 || id != float64(uint(id)) {
		return 0, fmt.Errorf("%w: missing member_id claim", models.ErrInvalidToken)
	}
	return uint(id), nil
}
