package admin

import (
	"context"

	"bananex-be/internal/logger"
	"bananex-be/internal/user"
	"bananex-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, *Admin, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login checks admin credentials and issues a token carrying the admin
// role claim. Admin passwords are bcrypt hashes like user passwords.
func (s *service) Login(ctx context.Context, email, password string) (string, *Admin, error) {
	log := logger.FromCtx(ctx)

	if utils.IsEmpty(email) || utils.IsEmpty(password) {
		return "", nil, ErrMissingCredentials
	}

	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.CheckPasswordHash(password, a.PasswordHash) {
		log.Warn("admin login rejected", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := user.GenerateJWT(a.ID, utils.RoleAdmin, a.Email)
	if err != nil {
		return "", nil, err
	}

	log.Info("admin logged in", zap.Uint("admin_id", a.ID))

	return token, a, nil
}
