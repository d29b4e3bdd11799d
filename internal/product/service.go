package product

import (
	"context"

	"bananex-be/internal/utils"
)

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id uint, upd Update) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p *Product) error {
	if utils.IsEmpty(p.Name) {
		return ErrNameRequired
	}
	return s.repo.Create(ctx, p)
}

func (s *service) Update(ctx context.Context, id uint, upd Update) (*Product, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
