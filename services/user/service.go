package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "hogarlink/database/repository/user"
	"hogarlink/models"
	"hogarlink/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenDuration = 72 * time.Hour

// UserService covers the account operations the checkout flow depends on.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.AuthResponse, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, reg.Email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, &u); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, &u)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: u}, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, creds models.UserCredentials) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *u}, nil
}

// issueToken signs a JWT and records its hash on the user document so a
// stolen token can be invalidated server-side.
func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, hash); err != nil {
		return "", fmt.Errorf("failed to record token hash: %w", err)
	}
	u.TokenHash = hash
	return token, nil
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFCMToken(ctx, id, token)
}
