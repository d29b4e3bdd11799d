package inquiry

import (
	"context"

	"bananex-be/internal/utils"
)

type Service interface {
	SubmitGuest(ctx context.Context, name, phone, message string) (*Inquiry, error)
	SubmitForUser(ctx context.Context, userID uint, message string) (*Inquiry, error)
	ListMine(ctx context.Context, userID uint) ([]Inquiry, error)
	ListAll(ctx context.Context) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*Inquiry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SubmitGuest(ctx context.Context, name, phone, message string) (*Inquiry, error) {
	if utils.IsEmpty(name) || utils.IsEmpty(phone) || utils.IsEmpty(message) {
		return nil, ErrMissingFields
	}
	if !utils.IsValidPhone(phone) {
		return nil, ErrMissingFields
	}
	inq := &Inquiry{Name: name, Phone: phone, Message: message}
	if err := s.repo.Create(ctx, inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *service) SubmitForUser(ctx context.Context, userID uint, message string) (*Inquiry, error) {
	if utils.IsEmpty(message) {
		return nil, ErrMissingFields
	}
	return s.repo.CreateForUser(ctx, userID, message)
}

func (s *service) ListMine(ctx context.Context, userID uint) ([]Inquiry, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Inquiry, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id uint, status string) (*Inquiry, error) {
	switch InquiryStatus(status) {
	case StatusNew, StatusResponded, StatusClosed:
	default:
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, InquiryStatus(status))
}
