package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/store-dashboard/internal/config"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminDisabled      = errors.New("admin access is not configured")
)

// AuthService authenticates the single configured admin account.
type AuthService struct {
	issuer       *Issuer
	username     string
	passwordHash []byte
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		issuer:       NewIssuer(cfg.JWTSecret, cfg.TokenTTL),
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
	}
}

func (a *AuthService) Enabled() bool {
	return len(a.issuer.secret) > 0 && len(a.passwordHash) > 0
}

func (a *AuthService) Issuer() *Issuer {
	return a.issuer
}

// Login checks the credentials and returns a signed token.
func (a *AuthService) Login(username, password string) (string, error) {
	if !a.Enabled() {
		return "", ErrAdminDisabled
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil || !userOK {
		return "", ErrInvalidCredentials
	}

	token, err := a.issuer.GenerateToken(models.User{Username: username, Role: models.RoleAdmin})
	if err != nil {
		return "", fmt.Errorf("could not generate token: %w", err)
	}
	return token, nil
}

// HashPassword produces the value expected in auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", errors.New("password must have at least 6 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
