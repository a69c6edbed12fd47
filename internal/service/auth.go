package service

import (
	"fmt"

	"friction-log/internal/config"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct{ cfg config.AuthConfig }

func NewAuthService(cfg config.AuthConfig) *AuthService { return &AuthService{cfg: cfg} }

// Enabled reports whether credentials are configured; when false the API
// runs open, the reference single-user deployment.
func (s *AuthService) Enabled() bool {
	return s.cfg.Username != "" && s.cfg.PasswordHash != ""
}

func (s *AuthService) Login(username, password string) error {
	if username != s.cfg.Username {
		return fmt.Errorf("user not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) != nil {
		return fmt.Errorf("wrong password")
	}
	return nil
}
