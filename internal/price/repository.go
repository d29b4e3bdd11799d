package price

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID uint) ([]Price, error)
	Add(ctx context.Context, p *Price) error
	UpdateAmount(ctx context.Context, id uint, amount float64) (*Price, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByProduct(ctx context.Context, productID uint) ([]Price, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, price, date, created_at
		FROM prices
		WHERE product_id = $1
		ORDER BY date DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []Price
	for rows.Next() {
		var p Price
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Price, &p.Date, &p.CreatedAt); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (r *repository) Add(ctx context.Context, p *Price) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO prices (product_id, price, date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, p.ProductID, p.Price, p.Date).Scan(&p.ID, &p.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicateDate
		case "23503":
			return ErrProductNotFound
		}
	}
	return err
}

func (r *repository) UpdateAmount(ctx context.Context, id uint, amount float64) (*Price, error) {
	var p Price
	err := r.db.QueryRowContext(ctx, `
		UPDATE prices SET price = $1 WHERE id = $2
		RETURNING id, product_id, price, date, created_at
	`, amount, id).Scan(&p.ID, &p.ProductID, &p.Price, &p.Date, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPriceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrPriceNotFound
	}
	return nil
}
