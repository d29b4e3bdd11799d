package user

import (
	"context"

	"bananex-be/internal/logger"
	"bananex-be/internal/utils"

	"go.uber.org/zap"
)

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	BusinessName string `json:"business_name"`
	GSTNumber    string `json:"gst_number"`
	Address      string `json:"address"`
}

type Service interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	UpdateStatus(ctx context.Context, id uint, status UserStatus) (*User, error)
	AddStockAlert(ctx context.Context, userID, productID uint) (*StockAlert, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	log := logger.FromCtx(ctx)

	if utils.IsEmpty(in.Name) || utils.IsEmpty(in.Email) || utils.IsEmpty(in.Password) || utils.IsEmpty(in.Role) {
		return nil, ErrMissingFields
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if in.Phone != "" && !utils.IsValidPhone(in.Phone) {
		return nil, ErrInvalidPhone
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hashed,
		Role:         in.Role,
		BusinessName: in.BusinessName,
		GSTNumber:    in.GSTNumber,
		Address:      in.Address,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	log.Info("user registered",
		zap.Uint("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*User, error) {
	if upd.Phone != nil && !utils.IsValidPhone(*upd.Phone) {
		return nil, ErrInvalidPhone
	}
	return s.repo.UpdateProfile(ctx, userID, upd)
}

func (s *service) ListAll(ctx context.Context) ([]*User, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id uint, status UserStatus) (*User, error) {
	if status != StatusApproved && status != StatusSuspended {
		return nil, ErrInvalidUserStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) AddStockAlert(ctx context.Context, userID, productID uint) (*StockAlert, error) {
	return s.repo.CreateStockAlert(ctx, userID, productID)
}
