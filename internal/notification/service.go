package notification

import (
	"context"

	"bananex-be/internal/utils"
)

type Service interface {
	Notify(ctx context.Context, userID uint, message, typ string) (*Notification, error)
	ListForUser(ctx context.Context, userID uint) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uint, message, typ string) (*Notification, error) {
	if utils.IsEmpty(message) {
		return nil, ErrEmptyMessage
	}
	switch typ {
	case TypeOrder, TypeStock, TypeGeneral:
	case "":
		typ = TypeGeneral
	default:
		return nil, ErrInvalidType
	}
	n := &Notification{UserID: userID, Message: message, Type: typ}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]Notification, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, userID uint) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}
