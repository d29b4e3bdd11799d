package invoice

import (
	"context"
	"math"

	"bananex-be/internal/logger"
	"bananex-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, orderID uint, invoiceNumber string, items []Item, total float64) (*Invoice, error)
	GetForOrder(ctx context.Context, orderID uint) (*Invoice, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates the submitted invoice before any storage call, then
// hands the locked protocol to the repository. On success the order is
// completed in the same transaction the invoice was written in.
func (s *service) Create(ctx context.Context, orderID uint, invoiceNumber string, items []Item, total float64) (*Invoice, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Uint("order_id", orderID),
	)

	if utils.IsEmpty(invoiceNumber) {
		return nil, ErrNoNumber
	}
	if len(items) < MinItems || len(items) > MaxItems {
		log.Warn("invoice item count out of range", zap.Int("item_count", len(items)))
		return nil, ErrItemCount
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, ErrInvalidTotal
	}

	inv := &Invoice{
		OrderID:       orderID,
		InvoiceNumber: invoiceNumber,
		Items:         items,
		Total:         total,
	}

	if err := s.repo.CreateForOrder(ctx, orderID, inv); err != nil {
		return nil, err
	}

	log.Info("invoice issued", zap.String("invoice_number", invoiceNumber))

	return inv, nil
}

func (s *service) GetForOrder(ctx context.Context, orderID uint) (*Invoice, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}
