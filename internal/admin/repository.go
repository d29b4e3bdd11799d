package admin

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM admins WHERE email = $1
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
