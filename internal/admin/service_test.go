package admin

import (
	"context"
	"testing"

	"bananex-be/internal/user"
	"bananex-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Admin), args.Error(1)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := user.HashPassword("admin-pass")
	require.NoError(t, err)

	stored := &Admin{ID: 1, Name: "Ops", Email: "ops@example.com", PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ops@example.com").Return(stored, nil)

		token, a, err := svc.Login(ctx, "ops@example.com", "admin-pass")
		require.NoError(t, err)
		assert.Equal(t, uint(1), a.ID)

		claims, err := user.ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, utils.RoleAdmin, claims.Role)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, _, err := svc.Login(ctx, "", "admin-pass")
		assert.ErrorIs(t, err, ErrMissingCredentials)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("UnknownAdmin", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, ErrAdminNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ops@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "ops@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
