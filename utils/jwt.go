package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// TokenPair carries both tokens issued on register/login/refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// GenerateTokenPair signs an access and a refresh token for the user.
// The secret is handed in by the caller; nothing here reads the environment.
func GenerateTokenPair(secret []byte, userID uint, email string) (TokenPair, error) {
	access, err := signToken(secret, userID, email, TokenTypeAccess, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signToken(secret, userID, email, TokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func signToken(secret []byte, userID uint, email, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   fmt.Sprint(userID),
		"email": email,
		"type":  tokenType,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken validates signature and expiry and checks the token type claim.
func ParseToken(secret []byte, tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if t, _ := claims["type"].(string); t != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
