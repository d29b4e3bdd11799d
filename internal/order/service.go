package order

import (
	"context"
	"errors"
	"time"

	"bananex-be/internal/invoice"
	"bananex-be/internal/logger"
	"bananex-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID uint, deliveryDate time.Time, items []NewOrderItem) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByCode(ctx context.Context, code string, userID uint, isAdmin bool) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, status OrderStatus, deliveryDate *time.Time) (*Order, error)
	Cancel(ctx context.Context, code string, userID uint) (*Order, error)
}

type service struct {
	repo        Repository
	invoiceRepo invoice.Repository
}

func NewService(repo Repository, invRepo invoice.Repository) Service {
	return &service{repo: repo, invoiceRepo: invRepo}
}

// Create validates the submitted order, assigns a fresh public order
// code and persists the order with its items in one transaction.
func (s *service) Create(ctx context.Context, userID uint, deliveryDate time.Time, items []NewOrderItem) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
		zap.Int("item_count", len(items)),
	)

	if deliveryDate.IsZero() || len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	o := &Order{
		OrderCode:    utils.GenerateOrderCode(),
		UserID:       userID,
		DeliveryDate: deliveryDate,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, o, items); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.String("order_code", o.OrderCode),
	)

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

// GetByID is the admin lookup; the invoice is attached once the order
// is completed.
func (s *service) GetByID(ctx context.Context, id uint) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.attachInvoice(ctx, o)
}

// GetByCode is the customer-facing lookup. Orders are visible to their
// owner only, except to admins; a foreign code reads as not found.
func (s *service) GetByCode(ctx context.Context, code string, userID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return s.attachInvoice(ctx, o)
}

// UpdateStatus moves an order along the status state machine. The
// requested value is validated before anything is read; the transition
// is checked against the current row before anything is written.
func (s *service) UpdateStatus(ctx context.Context, id uint, status OrderStatus, deliveryDate *time.Time) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.Uint("order_id", id),
		zap.String("requested_status", string(status)),
	)

	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CheckTransition(current.Status, status); err != nil {
		log.Warn("status change rejected",
			zap.String("current_status", string(current.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, id, StatusUpdate{
		Status:       status,
		DeliveryDate: deliveryDate,
	})
	if err != nil {
		return nil, err
	}

	log.Info("order status updated",
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)

	updated.Items = current.Items
	return updated, nil
}

// Cancel sets an owner's order to cancelled through the same state
// machine as any other status change.
func (s *service) Cancel(ctx context.Context, code string, userID uint) (*Order, error) {
	o, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}

	if err := CheckTransition(o.Status, StatusCancelled); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, o.ID, StatusUpdate{Status: StatusCancelled})
	if err != nil {
		return nil, err
	}

	updated.Items = o.Items
	return updated, nil
}

func (s *service) attachInvoice(ctx context.Context, o *Order) (*Order, error) {
	if o.Status != StatusCompleted {
		return o, nil
	}

	inv, err := s.invoiceRepo.GetByOrderID(ctx, o.ID)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			// Completed order with no invoice row should not happen;
			// surface the order anyway rather than fail the read.
			logger.FromCtx(ctx).Warn("completed order has no invoice",
				zap.Uint("order_id", o.ID),
			)
			return o, nil
		}
		return nil, err
	}

	o.Invoice = inv
	return o, nil
}
