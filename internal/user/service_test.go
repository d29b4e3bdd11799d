package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*User), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id uint, status UserStatus) (*User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) CreateStockAlert(ctx context.Context, userID, productID uint) (*StockAlert, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StockAlert), args.Error(1)
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Phone:    "0812345678",
		Password: "s3cret-pass",
		Role:     "buyer",
	}
}

// --- Tests ---

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*User)
				assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
				u.ID = 1
				u.Status = StatusPending
			}).
			Return(nil)

		u, err := svc.Register(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, StatusPending, u.Status)
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := validInput()
		in.Password = ""

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrMissingFields)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("BadEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := validInput()
		in.Email = "not-an-email"

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("BadPhone", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		in := validInput()
		in.Phone = "123"

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.Anything).Return(ErrEmailExists)

		_, err := svc.Register(ctx, validInput())
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	stored := &User{ID: 1, Email: "ravi@example.com", PasswordHash: hash, Role: "buyer"}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ravi@example.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "ravi@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, ErrUserNotFound)

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByEmail", ctx, "ravi@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "ravi@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidValue", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.UpdateStatus(ctx, 1, "banned")
		assert.ErrorIs(t, err, ErrInvalidUserStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Approved", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("UpdateStatus", ctx, uint(1), StatusApproved).
			Return(&User{ID: 1, Status: StatusApproved}, nil)

		u, err := svc.UpdateStatus(ctx, 1, StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, u.Status)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("BadPhone", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		bad := "123"
		_, err := svc.UpdateProfile(ctx, 1, ProfileUpdate{Phone: &bad})
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("Partial", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		name := "Ravi K"
		upd := ProfileUpdate{Name: &name}
		repo.On("UpdateProfile", ctx, uint(1), upd).
			Return(&User{ID: 1, Name: name}, nil)

		u, err := svc.UpdateProfile(ctx, 1, upd)
		require.NoError(t, err)
		assert.Equal(t, name, u.Name)
	})
}
