package services

import (
	"context"
	"log"
	"time"

	"computer-aid/models"
	"computer-aid/utils"
)

type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, a *models.Admin) error
}

type AuthService struct {
	store     AdminStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(store AdminStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{store: store, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// Login returns a signed session token. Unknown usernames and wrong passwords
// produce the same error so the response never reveals which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.VerifyPassword(admin.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateAdminToken(s.jwtSecret, s.jwtExpiry, admin.ID, admin.Username)
}

func (s *AuthService) TokenExpiry() time.Duration {
	return s.jwtExpiry
}

// EnsureAdmin seeds the administrator account from config exactly once: only
// when the table is empty and credentials are configured. Safe to run on
// every startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.store.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user %q created", username)
	return nil
}
