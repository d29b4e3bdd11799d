package price

import (
	"context"
	"time"
)

type Service interface {
	ListByProduct(ctx context.Context, productID uint) ([]Price, error)
	Add(ctx context.Context, productID uint, amount float64, date time.Time) (*Price, error)
	UpdateAmount(ctx context.Context, id uint, amount float64) (*Price, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListByProduct(ctx context.Context, productID uint) ([]Price, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) Add(ctx context.Context, productID uint, amount float64, date time.Time) (*Price, error) {
	if amount <= 0 {
		return nil, ErrInvalidPrice
	}
	if date.IsZero() {
		date = time.Now()
	}
	p := &Price{
		ProductID: productID,
		Price:     amount,
		Date:      date.Truncate(24 * time.Hour),
	}
	if err := s.repo.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateAmount(ctx context.Context, id uint, amount float64) (*Price, error) {
	if amount <= 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.UpdateAmount(ctx, id, amount)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
