package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
)

var ErrMissingToken = errors.New("missing or invalid token")

// Issuer signs and verifies HS256 tokens with one shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) GenerateToken(user models.User) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *Issuer) ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
}

// TokenClaims parses the value of an Authorization header.
func (i *Issuer) TokenClaims(authorization string) (models.User, error) {
	tokenStr, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenStr == "" {
		return models.User{}, ErrMissingToken
	}
	if len(i.secret) == 0 {
		return models.User{}, errors.New("token verification disabled: no secret configured")
	}

	token, err := i.ParseToken(tokenStr)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, errors.New("invalid token claims")
	}

	username, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return models.User{Username: username, Role: role}, nil
}
