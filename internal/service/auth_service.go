package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"adminpanel/api/internal/config"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/repository"
	"adminpanel/api/internal/security"
)

// ErrInvalidCredentials covers both unknown email and wrong password so
// the login response cannot reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is everything the services need from the persistence layer.
type UserStore interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetPublicByID(ctx context.Context, id int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, changes repository.UserChanges) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies the credential pair and issues a session token. The
// plaintext password is not retained beyond the bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if !security.VerifyPassword(input.Password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := security.IssueSessionToken(s.cfg.Security.SessionSecret, user.ID, s.cfg.Security.SessionTTL)
	if err != nil {
		return models.User{}, "", err
	}

	user.PasswordHash = nil
	return user, token, nil
}
