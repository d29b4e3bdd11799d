package order

import (
	"context"
	"database/sql"
	"errors"

	"bananex-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Postgres error codes surfaced by item inserts.
const (
	pgForeignKeyViolation = "23503"
)

type Repository interface {
	Create(ctx context.Context, o *Order, items []NewOrderItem) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByCode(ctx context.Context, code string) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uint, upd StatusUpdate) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the order row and all its items in one transaction.
// Any failed item insert rolls the whole order back.
func (r *repository) Create(ctx context.Context, o *Order, items []NewOrderItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_code", o.OrderCode),
		zap.Int("item_count", len(items)),
	)

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

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_code, user_id, delivery_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`, o.OrderCode, o.UserID, o.DeliveryDate, o.Status).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i, item := range items {
		var oi OrderItem
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING id
		`, o.ID, item.ProductID, item.Quantity).Scan(&oi.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
				log.Warn("unknown product on order item",
					zap.Int("item_index", i),
					zap.Uint("product_id", item.ProductID),
				)
				return ErrProductNotFound
			}
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.Error(err),
			)
			return err
		}

		oi.OrderID = o.ID
		oi.ProductID = item.ProductID
		oi.Quantity = item.Quantity
		o.Items = append(o.Items, oi)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order created", zap.Uint("order_id", o.ID))

	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.order_code, o.user_id, u.name, o.delivery_date, o.status, o.created_at, o.updated_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1
	`, id).Scan(&o.ID, &o.OrderCode, &o.UserID, &o.UserName, &o.DeliveryDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Items, err = r.itemsForOrder(ctx, o.ID); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.order_code, o.user_id, u.name, o.delivery_date, o.status, o.created_at, o.updated_at
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.order_code = $1
	`, code).Scan(&o.ID, &o.OrderCode, &o.UserID, &o.UserName, &o.DeliveryDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Items, err = r.itemsForOrder(ctx, o.ID); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_code, user_id, delivery_date, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderCode, &o.UserID, &o.DeliveryDate, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Items, err = r.itemsForOrder(ctx, o.ID); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// ListAll is the admin view: every order with its owner and, when
// invoiced, the invoice number.
func (r *repository) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.order_code, o.user_id, u.name, o.delivery_date, o.status,
		       o.created_at, o.updated_at, i.invoice_number
		FROM orders o
		JOIN users u ON o.user_id = u.id
		LEFT JOIN invoices i ON o.id = i.order_id
		ORDER BY o.delivery_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderCode, &o.UserID, &o.UserName, &o.DeliveryDate,
			&o.Status, &o.CreatedAt, &o.UpdatedAt, &o.InvoiceNumber); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Items, err = r.itemsForOrder(ctx, o.ID); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// UpdateStatus writes the fields chosen in upd and returns the updated
// row. The two statement shapes are fixed up front; no clause is built
// from request data.
func (r *repository) UpdateStatus(ctx context.Context, id uint, upd StatusUpdate) (*Order, error) {
	var (
		o    Order
		row  *sql.Row
		base = `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, order_code, user_id, delivery_date, status, created_at, updated_at`
		withDate = `
		UPDATE orders SET status = $1, delivery_date = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, order_code, user_id, delivery_date, status, created_at, updated_at`
	)

	if upd.DeliveryDate != nil {
		row = r.db.QueryRowContext(ctx, withDate, upd.Status, *upd.DeliveryDate, id)
	} else {
		row = r.db.QueryRowContext(ctx, base, upd.Status, id)
	}

	err := row.Scan(&o.ID, &o.OrderCode, &o.UserID, &o.DeliveryDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) itemsForOrder(ctx context.Context, orderID uint) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
