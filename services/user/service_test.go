package user

import (
	"context"
	"testing"

	userRepo "hogarlink/database/repository/user"
	"hogarlink/models"
	"hogarlink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*models.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, u *models.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *memoryUserRepo) UpdateTokenHash(ctx context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.TokenHash = hash
	return nil
}

func (r *memoryUserRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.FCMToken = token
	return nil
}

func registration() models.UserRegistration {
	return models.UserRegistration{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "correct-horse",
	}
}

func TestRegisterIssuesTokenAndRecordsHash(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")))
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)

	id, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(context.Background(), registration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registration())
	assert.Error(t, err)
}

func TestAuthenticateRotatesTokenHash(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	reg, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, models.UserCredentials{
		Email:    "ana@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Register(ctx, registration())
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, models.UserCredentials{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, models.UserCredentials{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
