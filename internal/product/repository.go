package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id uint, upd Update) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productCols = `id, name, description, packaging, shelf_life, available_stock, restock_date, image_urls, is_active`

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productCols+` FROM products ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Packaging, &p.ShelfLife,
			&p.AvailableStock, &p.RestockDate, pq.Array(&p.ImageURLs), &p.IsActive); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT `+productCols+` FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Packaging, &p.ShelfLife,
			&p.AvailableStock, &p.RestockDate, pq.Array(&p.ImageURLs), &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, packaging, shelf_life, available_stock, restock_date, image_urls, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id, is_active
	`, p.Name, p.Description, p.Packaging, p.ShelfLife, p.AvailableStock, p.RestockDate, pq.Array(p.ImageURLs)).
		Scan(&p.ID, &p.IsActive)
}

func (r *repository) Update(ctx context.Context, id uint, upd Update) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    packaging = COALESCE($3, packaging),
		    shelf_life = COALESCE($4, shelf_life),
		    available_stock = COALESCE($5, available_stock),
		    restock_date = COALESCE($6, restock_date),
		    is_active = COALESCE($7, is_active)
		WHERE id = $8
		RETURNING `+productCols+`
	`, upd.Name, upd.Description, upd.Packaging, upd.ShelfLife, upd.AvailableStock,
		upd.RestockDate, upd.IsActive, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Packaging, &p.ShelfLife,
			&p.AvailableStock, &p.RestockDate, pq.Array(&p.ImageURLs), &p.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
