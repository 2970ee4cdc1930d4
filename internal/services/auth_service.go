package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies submitted credentials against the credential store.
type AuthService struct {
	userRepo repositories.UserRepository
	log      *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, log *slog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		log:      log,
	}
}

// Authenticate returns the matching user when password verifies against the stored hash.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, ok, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !ok {
		s.log.Info("login rejected", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Info("login rejected", "username", username)
		return nil, ErrInvalidCredentials
	}

	s.log.Info("login accepted", "username", username, "role", user.Role)
	return user, nil
}

// HashPassword produces the bcrypt verifier stored for a user.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
