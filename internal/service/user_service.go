package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"adminpanel/api/internal/audit"
	"adminpanel/api/internal/models"
	"adminpanel/api/internal/repository"
	"adminpanel/api/internal/security"
)

const minPasswordLength = 6

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

type UserService struct {
	users UserStore
	audit *audit.Recorder
	log   zerolog.Logger
}

func NewUserService(users UserStore, recorder *audit.Recorder, log zerolog.Logger) *UserService {
	return &UserService{
		users: users,
		audit: recorder,
		log:   log,
	}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

func (s *UserService) Create(ctx context.Context, actor models.User, input CreateUserInput) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, ErrMissingCredentials
	}
	if len(input.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	var name *string
	if input.Name != "" {
		name = &input.Name
	}

	created, err := s.users.Create(ctx, models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.NormalizeRole(input.Role),
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit.Record(ctx, actor.ID, audit.ActionUserCreated, created.ID)
	return created, nil
}

// UpdateUserInput carries a partial update; nil fields are untouched.
type UpdateUserInput struct {
	Name     *string
	Password *string
	Role     *string
}

func (s *UserService) Update(ctx context.Context, actor models.User, id int64, input UpdateUserInput) (models.User, error) {
	// Existence is checked before the body is validated: an unknown id
	// is 404 no matter what the request carries.
	if _, err := s.users.GetPublicByID(ctx, id); err != nil {
		return models.User{}, err
	}

	changes := repository.UserChanges{Name: input.Name}

	if input.Role != nil {
		role := models.NormalizeRole(*input.Role)
		changes.Role = &role
	}

	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < minPasswordLength {
			return models.User{}, ErrPasswordTooShort
		}
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return models.User{}, err
		}
		changes.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, id, changes)
	if err != nil {
		return models.User{}, err
	}

	s.audit.Record(ctx, actor.ID, audit.ActionUserUpdated, id)
	return updated, nil
}

// Delete removes the account outright. There is deliberately no
// self-delete guard; an admin may delete their own row.
func (s *UserService) Delete(ctx context.Context, actor models.User, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor.ID, audit.ActionUserDeleted, id)
	return nil
}
