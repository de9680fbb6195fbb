package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/socialclub/internal/pkg/models"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned for malformed, expired or forged tokens
var ErrInvalidToken = errors.New("invalid token")

// GenerateAccessToken issues a short-lived token for customerID
func GenerateAccessToken(customerID, email string, cfg models.JWTConfig) (string, time.Time, error) {
	return generate(customerID, email, tokenTypeAccess, time.Duration(cfg.AccessExpiration)*time.Minute, cfg)
}

// GenerateRefreshToken issues a long-lived token that can only be exchanged for a new pair
func GenerateRefreshToken(customerID, email string, cfg models.JWTConfig) (string, time.Time, error) {
	return generate(customerID, email, tokenTypeRefresh, time.Duration(cfg.RefreshExpiration)*time.Minute, cfg)
}

func generate(customerID, email, tokenType string, ttl time.Duration, cfg models.JWTConfig) (string, time.Time, error) {
	expirationTime := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"id":    customerID,
		"email": email,
		"type":  tokenType,
		"exp":   expirationTime.Unix(),
		"iat":   time.Now().Unix(),
		"iss":   cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expirationTime, nil
}

// ValidateToken validates a JWT token and returns the identity it carries
func ValidateToken(tokenString string, secret string) (*models.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	tokenType, _ := claims["type"].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	return &models.Claims{
		CustomerID: id,
		Email:      email,
		Refresh:    tokenType == tokenTypeRefresh,
	}, nil
}
