package invoice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"bananex-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type Repository interface {
	// CreateForOrder runs the whole invoicing protocol in one
	// transaction with the order row locked for update.
	CreateForOrder(ctx context.Context, orderID uint, inv *Invoice) error
	GetByOrderID(ctx context.Context, orderID uint) (*Invoice, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateForOrder locks the order row, verifies it is still confirmed,
// inserts the invoice and flips the order to completed. The status
// check happens after the lock is held, so two concurrent attempts on
// the same order cannot both pass it; the loser re-reads a completed
// order once the winner commits.
func (r *repository) CreateForOrder(ctx context.Context, orderID uint, inv *Invoice) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateForOrder"),
		zap.Uint("order_id", orderID),
	)

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM orders WHERE id = $1 FOR UPDATE`,
		orderID,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrOrderNotFound
	}
	if err != nil {
		log.Error("failed to lock order row", zap.Error(err))
		return err
	}

	if status != "confirmed" {
		log.Warn("order not in confirmed state", zap.String("status", status))
		return ErrOrderNotConfirmed
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO invoices (order_id, invoice_number, items, total, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`, orderID, inv.InvoiceNumber, itemsJSON, inv.Total).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return ErrInvoiceExists
		}
		log.Error("failed to insert invoice", zap.Error(err))
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = 'completed', updated_at = NOW() WHERE id = $1`,
		orderID,
	); err != nil {
		log.Error("failed to complete order", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit invoice transaction", zap.Error(err))
		return err
	}

	committed = true
	inv.OrderID = orderID
	log.Info("invoice created and order completed",
		zap.String("invoice_number", inv.InvoiceNumber),
	)

	return nil
}

func (r *repository) GetByOrderID(ctx context.Context, orderID uint) (*Invoice, error) {
	var (
		inv       Invoice
		itemsJSON []byte
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, invoice_number, items, total, created_at
		FROM invoices
		WHERE order_id = $1
	`, orderID).Scan(&inv.ID, &inv.OrderID, &inv.InvoiceNumber, &itemsJSON, &inv.Total, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, err
	}

	return &inv, nil
}
